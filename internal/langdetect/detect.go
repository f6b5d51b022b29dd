// Package langdetect provides best-effort language detection for
// incoming chat messages, plus greeting recognition for short inputs.
// Detection may be wrong; the matcher tolerates a bad hint via its
// cross-language fallback.
package langdetect

import (
	"github.com/abadojack/whatlanggo"
)

// DefaultLang is used when detection is inconclusive or the detected
// language is outside the supported set.
const DefaultLang = "en"

var supported = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "en",
	whatlanggo.Hin: "hi",
	whatlanggo.Ind: "id",
}

var whitelist = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Hin: true,
		whatlanggo.Ind: true,
	},
}

// Detect returns the language code of text, restricted to the
// supported set {en, hi, id} and defaulting to English.
func Detect(text string) string {
	info := whatlanggo.DetectWithOptions(text, whitelist)
	if code, ok := supported[info.Lang]; ok {
		return code
	}
	return DefaultLang
}
