// Package fuzz provides normalized fuzzy string similarity ratios on a
// 0-100 scale, comparable across implementations: case-insensitive,
// whitespace-collapsed, Levenshtein-based.
package fuzz

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

func levenshtein() *metrics.Levenshtein {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return lev
}

// clean collapses internal whitespace and lowercases, so ratios are
// insensitive to case and spacing.
func clean(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Ratio is the normalized Levenshtein similarity between a and b,
// scaled to [0,100].
func Ratio(a, b string) float64 {
	ca, cb := clean(a), clean(b)
	if ca == "" && cb == "" {
		return 100
	}
	if ca == "" || cb == "" {
		return 0
	}
	return strutil.Similarity(ca, cb, levenshtein()) * 100
}

// PartialRatio slides the shorter string over the longer one and
// returns the best window Ratio. A query that is a substring of a
// candidate phrase scores 100.
func PartialRatio(a, b string) float64 {
	ca, cb := clean(a), clean(b)
	if ca == "" || cb == "" {
		return Ratio(ca, cb)
	}

	short, long := []rune(ca), []rune(cb)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == len(long) {
		return Ratio(string(short), string(long))
	}

	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := Ratio(string(short), string(long[i:i+len(short)]))
		if r > best {
			best = r
		}
		if best == 100 {
			break
		}
	}
	return best
}

// TokenSortRatio compares the two strings with their tokens sorted,
// making the ratio insensitive to word order.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

// TokenSetRatio compares intersection and difference token groups,
// which tolerates both reordering and extra words on either side.
func TokenSetRatio(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)

	var inter, diffA, diffB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := Ratio(combA, combB)
	if base != "" {
		if r := Ratio(base, combA); r > best {
			best = r
		}
		if r := Ratio(base, combB); r > best {
			best = r
		}
	}
	return best
}

// BestRatio is the strongest of the partial, token-sort and token-set
// ratios. This is the phrase similarity used by the matcher.
func BestRatio(a, b string) float64 {
	best := PartialRatio(a, b)
	if r := TokenSortRatio(a, b); r > best {
		best = r
	}
	if r := TokenSetRatio(a, b); r > best {
		best = r
	}
	return best
}

func sortTokens(s string) string {
	toks := strings.Fields(clean(s))
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(clean(s)) {
		set[tok] = struct{}{}
	}
	return set
}
