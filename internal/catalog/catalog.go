// Package catalog holds the in-memory FAQ knowledge base: entries with
// per-language canonical questions, paraphrases and answers, loaded once
// at startup and immutable afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/faqdesk/faqmatch/internal/textnorm"
)

// MinKeywordLength drops single-letter tokens from entry keyword sets.
const MinKeywordLength = 2

// Entry is a single FAQ item. Variant text is stored in normalized form
// (the matcher compares normalized strings); answers are stored verbatim.
type Entry struct {
	ID          string
	Question    map[string]string
	Paraphrases map[string][]string
	Answer      map[string]string

	variants map[string][]string // normalized question + paraphrases per language
	all      []string            // normalized variants across every language
	keywords map[string]struct{} // derived from all question text at load time
}

// Variants returns the entry's normalized canonical question and
// paraphrases for lang. Empty when the entry has no text for lang.
func (e *Entry) Variants(lang string) []string {
	return e.variants[lang]
}

// AllVariants returns the entry's normalized variants across every
// language, in declaration order.
func (e *Entry) AllVariants() []string {
	return e.all
}

// Keywords returns the entry's precomputed keyword set.
func (e *Entry) Keywords() map[string]struct{} {
	return e.keywords
}

// AnswerFor returns the entry's answer for lang. When the answer is
// missing for lang it falls back to any available language and reports
// the fallback via ok=false, signaling a data gap.
func (e *Entry) AnswerFor(lang string) (answer string, ok bool) {
	if a, found := e.Answer[lang]; found {
		return a, true
	}
	langs := make([]string, 0, len(e.Answer))
	for l := range e.Answer {
		langs = append(langs, l)
	}
	if len(langs) == 0 {
		return "", false
	}
	sort.Strings(langs)
	return e.Answer[langs[0]], false
}

// Catalog is an ordered, immutable collection of entries.
type Catalog struct {
	entries []*Entry
	langs   map[string]struct{}
}

// Entries returns all entries in load order.
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Supports reports whether any entry declares question text for lang.
func (c *Catalog) Supports(lang string) bool {
	_, ok := c.langs[lang]
	return ok
}

// EntriesForLanguage returns the entries that have a canonical question
// or paraphrase for lang. For an unsupported language it returns all
// entries: phrase comparison is textual, so cross-language fuzzy
// matching still works when language detection is off.
func (c *Catalog) EntriesForLanguage(lang string) []*Entry {
	if !c.Supports(lang) {
		return c.entries
	}
	var out []*Entry
	for _, e := range c.entries {
		if len(e.variants[lang]) > 0 {
			out = append(out, e)
		}
	}
	return out
}

type record struct {
	ID          string              `json:"id"`
	Question    map[string]string   `json:"question"`
	Paraphrases map[string][]string `json:"paraphrases"`
	Answer      map[string]string   `json:"answer"`
}

// Load reads and parses a JSON catalog file. Any malformed record is
// fatal: the process must not serve traffic with a partial catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file '%s': %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog '%s': %w", path, err)
	}
	return cat, nil
}

// Parse builds a Catalog from JSON data, validating every record:
// IDs must be unique, every entry needs at least one canonical
// question, and every language with a question must also have an
// answer.
func Parse(data []byte) (*Catalog, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	cat := &Catalog{langs: make(map[string]struct{})}
	seen := make(map[string]struct{})

	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		if len(rec.Question) == 0 {
			return nil, fmt.Errorf("record %q: no canonical question in any language", rec.ID)
		}
		for lang := range rec.Question {
			if _, ok := rec.Answer[lang]; !ok {
				return nil, fmt.Errorf("record %q: question for language %q has no answer", rec.ID, lang)
			}
		}

		cat.entries = append(cat.entries, buildEntry(rec))
	}

	for _, e := range cat.entries {
		for lang := range e.variants {
			cat.langs[lang] = struct{}{}
		}
	}

	return cat, nil
}

// buildEntry normalizes variant text and derives the keyword set once,
// so per-query scoring never re-tokenizes entry text.
func buildEntry(rec record) *Entry {
	e := &Entry{
		ID:          rec.ID,
		Question:    rec.Question,
		Paraphrases: rec.Paraphrases,
		Answer:      rec.Answer,
		variants:    make(map[string][]string),
		keywords:    make(map[string]struct{}),
	}

	langs := make([]string, 0, len(rec.Question))
	for lang := range rec.Question {
		langs = append(langs, lang)
	}
	for lang := range rec.Paraphrases {
		if _, ok := rec.Question[lang]; !ok {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	for _, lang := range langs {
		var vs []string
		if q, ok := rec.Question[lang]; ok {
			if n := textnorm.Normalize(q); n != "" {
				vs = append(vs, n)
			}
		}
		for _, p := range rec.Paraphrases[lang] {
			if n := textnorm.Normalize(p); n != "" {
				vs = append(vs, n)
			}
		}
		if len(vs) == 0 {
			continue
		}
		e.variants[lang] = vs
		e.all = append(e.all, vs...)

		for _, v := range vs {
			for _, kw := range textnorm.Keywords(v, MinKeywordLength) {
				e.keywords[kw] = struct{}{}
			}
		}
	}

	return e
}
