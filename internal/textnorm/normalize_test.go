package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "how to download status", Normalize("  How   to DOWNLOAD Status?! "))
	assert.Equal(t, "dont panic", Normalize("Don't panic..."))
	assert.Equal(t, "", Normalize("!!!???"))
	assert.Equal(t, "स्टेटस कैसे डाउनलोड करें", Normalize("स्टेटस कैसे डाउनलोड करें?"))
}

func TestNormalizeTypos(t *testing.T) {
	assert.Equal(t, "how to download status", Normalize("how to downlaod statuss"))
	assert.Equal(t, "hello whatsapp", Normalize("helo watsap"))
	assert.Equal(t, "नमस्ते", Normalize("हेलो"))
	assert.Equal(t, "hai", Normalize("halo"))
}

func TestKeywords(t *testing.T) {
	// Dedupes, drops sub-minimum tokens, keeps first-seen order.
	assert.Equal(t, []string{"to", "download", "status"}, Keywords("a to to download Status download", 2))
	assert.Empty(t, Keywords("! ?", 2))
}
