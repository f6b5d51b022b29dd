package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("download status", "download status"))
	assert.Equal(t, 100.0, Ratio("Download  Status", "download status"))
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("download", ""))
	assert.Greater(t, Ratio("download", "downlod"), 80.0)
	assert.Less(t, Ratio("banana", "spaceship"), 40.0)
}

func TestPartialRatio(t *testing.T) {
	// Substring scores 100 regardless of surrounding text.
	assert.Equal(t, 100.0, PartialRatio("download status", "how to download status today"))
	assert.Equal(t, 100.0, PartialRatio("how to download status today", "download status"))
	assert.Less(t, PartialRatio("banana", "download status"), 50.0)
}

func TestTokenSortRatio(t *testing.T) {
	// Word order does not matter.
	assert.Equal(t, 100.0, TokenSortRatio("status download", "download status"))
	assert.Less(t, TokenSortRatio("banana spaceship", "download status"), 50.0)
}

func TestTokenSetRatio(t *testing.T) {
	// Extra words on one side do not hurt when the token sets overlap.
	assert.Equal(t, 100.0, TokenSetRatio("download status", "how to download status"))
	assert.Equal(t, 100.0, TokenSetRatio("status status download", "download status"))
	assert.Less(t, TokenSetRatio("banana spaceship", "download status"), 50.0)
}

func TestBestRatio(t *testing.T) {
	best := BestRatio("status download", "how to download status")
	assert.Equal(t, 100.0, best)

	assert.GreaterOrEqual(t, BestRatio("a", "b"), 0.0)
	assert.LessOrEqual(t, BestRatio("how to download", "how to download"), 100.0)
}
