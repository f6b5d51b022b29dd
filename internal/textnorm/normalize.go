package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// typoTable maps frequent misspellings seen in chat traffic to their
// canonical forms. Applied per word after normalization, so entries
// must themselves be in normalized form.
var typoTable = map[string]string{
	// English
	"helo":     "hello",
	"watsap":   "whatsapp",
	"whastapp": "whatsapp",
	"wa":       "whatsapp",
	"downlaod": "download",
	"downlod":  "download",
	"statuss":  "status",
	"statu":    "status",
	"savee":    "save",
	// Hindi
	"हेलो":      "नमस्ते",
	"वाट्सप":    "व्हाट्सएप",
	"डाउनलोड्ड": "डाउनलोड",
	// Indonesian
	"halo": "hai",
	"undh": "unduh",
}

// Normalize folds a string to a canonical comparison form: NFKC,
// lowercase, punctuation stripped (letters and digits of any script
// survive, so Devanagari text is preserved), whitespace collapsed to
// single spaces, and known typos corrected word by word.
func Normalize(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		// IsMark keeps combining vowel signs, which Devanagari text
		// depends on.
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			b.WriteRune(r)
		case r == '!' || r == '?' || unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		if fix, ok := typoTable[w]; ok {
			words[i] = fix
		}
	}
	return strings.Join(words, " ")
}

// Keywords tokenizes s into a normalized, deduplicated token list,
// preserving first-seen order. Tokens shorter than minLen runes are
// dropped to keep single letters and stray particles out of the
// keyword channel.
func Keywords(s string, minLen int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range strings.Fields(Normalize(s)) {
		if utf8.RuneCountInString(tok) < minLen {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
