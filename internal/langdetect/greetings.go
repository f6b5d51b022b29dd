package langdetect

import (
	"strings"

	"github.com/faqdesk/faqmatch/internal/textnorm"
)

// maxGreetingWords bounds greeting detection to short inputs; longer
// messages are real questions even when they open with a greeting.
const maxGreetingWords = 3

// Greeting phrases are stored normalized, since input is normalized
// before lookup (so "हेलो" folds to "नमस्ते" via the typo table).
var greetings = map[string][]string{
	"hi": {"नमस्ते", "हाय", "शुभ प्रभात", "शुभ संध्या"},
	"id": {"hai", "selamat pagi", "selamat malam"},
	"en": {"hi", "hello", "hey", "good morning", "good evening"},
}

var greetingResponses = map[string]string{
	"en": "Hello! How can I assist you with WhatsApp statuses?",
	"hi": "नमस्ते! मैं व्हाट्सएप स्टेटस के बारे में कैसे मदद कर सकता हूँ?",
	"id": "Hai! Bagaimana saya bisa membantu dengan status WhatsApp?",
}

// Greeting reports whether text is a short greeting, returning the
// greeting's language and the canned response. Hindi and Indonesian
// are checked before English so that shared loanwords resolve to the
// more specific language.
func Greeting(text string) (lang, response string, ok bool) {
	normalized := textnorm.Normalize(text)
	words := strings.Fields(normalized)
	if len(words) == 0 || len(words) > maxGreetingWords {
		return "", "", false
	}

	for _, l := range []string{"hi", "id", "en"} {
		for _, g := range greetings[l] {
			if normalized == g {
				return l, greetingResponses[l], true
			}
			for _, w := range words {
				if w == g {
					return l, greetingResponses[l], true
				}
			}
		}
	}
	return "", "", false
}
