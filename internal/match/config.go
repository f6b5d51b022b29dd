package match

import (
	"fmt"
	"math"
)

// Config holds the matcher's tunable policy values. The defaults mirror
// the production tuning; all of them are configuration, not invariants.
type Config struct {
	// ConfidenceThreshold is the minimum final score (inclusive) for a
	// match to be accepted.
	ConfidenceThreshold float64
	// PhraseWeight scales the phrase-similarity channel.
	PhraseWeight float64
	// KeywordWeight scales the keyword-overlap channel. Must sum to 1.0
	// with PhraseWeight.
	KeywordWeight float64
	// MinQueryLength is the minimum query length in runes after
	// trimming; shorter input is rejected as nonsense.
	MinQueryLength int
}

func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 60,
		PhraseWeight:        0.8,
		KeywordWeight:       0.2,
		MinQueryLength:      2,
	}
}

func (c Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 100 {
		return fmt.Errorf("confidence threshold must be in [0,100], got %v", c.ConfidenceThreshold)
	}
	if c.PhraseWeight < 0 || c.KeywordWeight < 0 {
		return fmt.Errorf("weights must be non-negative, got phrase=%v keyword=%v", c.PhraseWeight, c.KeywordWeight)
	}
	if sum := c.PhraseWeight + c.KeywordWeight; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("phrase and keyword weights must sum to 1.0, got %v", sum)
	}
	if c.MinQueryLength < 1 {
		return fmt.Errorf("minimum query length must be at least 1, got %d", c.MinQueryLength)
	}
	return nil
}
