// Package match implements the intent-matching engine: a deterministic
// hybrid scorer that ranks a free-text query against every catalog
// entry and picks the best candidate above a confidence threshold.
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/faqdesk/faqmatch/internal/catalog"
	"github.com/faqdesk/faqmatch/internal/fuzz"
	"github.com/faqdesk/faqmatch/internal/textnorm"
)

type Status string

const (
	StatusMatched Status = "matched"
	StatusNoMatch Status = "no_match"
)

const (
	// ReasonNonsense marks queries rejected by the sanity pre-check.
	ReasonNonsense = "nonsense"
	// ReasonLowConfidence marks queries where no candidate cleared the
	// threshold.
	ReasonLowConfidence = "low_confidence"
)

// Candidate is the per-entry score breakdown for one query. All scores
// are in [0,100].
type Candidate struct {
	EntryID      string  `json:"entry_id"`
	PhraseScore  float64 `json:"phrase_score"`
	KeywordScore float64 `json:"keyword_score"`
	FinalScore   float64 `json:"final_score"`
}

// Result is the matcher's answer for one query. Every well-formed query
// yields exactly one Result; there is no error path at query time.
type Result struct {
	Status  Status  `json:"status"`
	EntryID string  `json:"entry_id,omitempty"`
	Answer  string  `json:"answer,omitempty"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason,omitempty"`
}

// Matcher scores queries against an immutable catalog. It holds no
// mutable state, so a single Matcher serves concurrent requests
// without locking.
type Matcher struct {
	cfg Config
	cat *catalog.Catalog
}

// New builds a Matcher over cat, validating cfg up front so a
// misconfigured weighting fails at startup rather than per request.
func New(cat *catalog.Catalog, cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg, cat: cat}, nil
}

// Match resolves query against the catalog for the given language hint.
//
// Pipeline: nonsense pre-check, hybrid scoring of every candidate
// entry (phrase channel weighted against keyword channel), then best
// candidate selection with an inclusive confidence threshold.
func (m *Matcher) Match(query, lang string) Result {
	if m.nonsense(query) {
		return Result{Status: StatusNoMatch, Reason: ReasonNonsense}
	}

	candidates := m.Rank(query, lang)

	best := -1
	for i, c := range candidates {
		if best < 0 {
			best = i
			continue
		}
		// Ties on final score prefer the stronger phrase channel; full
		// ties keep catalog order (first seen wins).
		if c.FinalScore > candidates[best].FinalScore ||
			(c.FinalScore == candidates[best].FinalScore && c.PhraseScore > candidates[best].PhraseScore) {
			best = i
		}
	}

	if best < 0 || candidates[best].FinalScore < m.cfg.ConfidenceThreshold {
		var top float64
		if best >= 0 {
			top = candidates[best].FinalScore
		}
		return Result{Status: StatusNoMatch, Score: top, Reason: ReasonLowConfidence}
	}

	winner := candidates[best]
	answer, _ := m.entry(winner.EntryID).AnswerFor(lang)
	return Result{
		Status:  StatusMatched,
		EntryID: winner.EntryID,
		Answer:  answer,
		Score:   winner.FinalScore,
	}
}

// Rank scores every candidate entry for the query, in catalog order.
// Exposed for debugging endpoints and gap analysis; Match consumes it
// directly.
func (m *Matcher) Rank(query, lang string) []Candidate {
	normQuery := textnorm.Normalize(query)
	queryKeywords := textnorm.Keywords(query, catalog.MinKeywordLength)

	entries := m.cat.EntriesForLanguage(lang)
	candidates := make([]Candidate, 0, len(entries))

	for _, e := range entries {
		variants := e.Variants(lang)
		if len(variants) == 0 {
			// Secondary pass: no text for the hinted language, compare
			// against every language's variants. Fuzzy comparison is
			// textual, so this keeps wrong language hints survivable.
			variants = e.AllVariants()
		}

		var phrase float64
		for _, v := range variants {
			if r := fuzz.BestRatio(normQuery, v); r > phrase {
				phrase = r
			}
		}

		keyword := diceOverlap(queryKeywords, e.Keywords()) * 100

		candidates = append(candidates, Candidate{
			EntryID:      e.ID,
			PhraseScore:  phrase,
			KeywordScore: keyword,
			FinalScore:   m.cfg.PhraseWeight*phrase + m.cfg.KeywordWeight*keyword,
		})
	}

	return candidates
}

// nonsense rejects queries that are empty after trimming, shorter than
// the minimum length, or contain no letters or digits at all. Such
// input would fuzzy-match trivially against everything.
func (m *Matcher) nonsense(query string) bool {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < m.cfg.MinQueryLength {
		return true
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (m *Matcher) entry(id string) *catalog.Entry {
	for _, e := range m.cat.Entries() {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// diceOverlap is the Sorensen-Dice coefficient between the query token
// list and the entry's precomputed keyword set: 2*|intersection| over
// the summed sizes, in [0,1].
func diceOverlap(query []string, entry map[string]struct{}) float64 {
	if len(query) == 0 || len(entry) == 0 {
		return 0
	}
	inter := 0
	for _, tok := range query {
		if _, ok := entry[tok]; ok {
			inter++
		}
	}
	return 2 * float64(inter) / float64(len(query)+len(entry))
}
