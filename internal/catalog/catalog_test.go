package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSampleCatalog(t *testing.T) {
	cat, err := Load("../../testdata/faq.json")
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())

	assert.True(t, cat.Supports("en"))
	assert.True(t, cat.Supports("hi"))
	assert.True(t, cat.Supports("id"))
	assert.False(t, cat.Supports("fr"))

	entry := cat.Entries()[0]
	assert.Equal(t, "download-status", entry.ID)

	// Variants are stored normalized: lowercase, no punctuation.
	variants := entry.Variants("en")
	require.NotEmpty(t, variants)
	assert.Equal(t, "how to download status", variants[0])

	// Keywords come from all languages' question text, precomputed.
	_, ok := entry.Keywords()["download"]
	assert.True(t, ok)
	_, ok = entry.Keywords()["स्टेटस"]
	assert.True(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestParseDuplicateID(t *testing.T) {
	_, err := Parse([]byte(`[
		{"id": "a", "question": {"en": "One?"}, "answer": {"en": "1"}},
		{"id": "a", "question": {"en": "Two?"}, "answer": {"en": "2"}}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestParseQuestionWithoutAnswer(t *testing.T) {
	_, err := Parse([]byte(`[
		{"id": "a", "question": {"en": "One?", "hi": "एक?"}, "answer": {"en": "1"}}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no answer")
}

func TestParseMissingQuestion(t *testing.T) {
	_, err := Parse([]byte(`[
		{"id": "a", "answer": {"en": "1"}}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no canonical question")
}

func TestParseMissingID(t *testing.T) {
	_, err := Parse([]byte(`[
		{"question": {"en": "One?"}, "answer": {"en": "1"}}
	]`))
	assert.Error(t, err)
}

func TestEntriesForLanguage(t *testing.T) {
	cat, err := Parse([]byte(`[
		{"id": "both", "question": {"en": "One?", "hi": "एक?"}, "answer": {"en": "1", "hi": "१"}},
		{"id": "en-only", "question": {"en": "Two?"}, "answer": {"en": "2"}}
	]`))
	require.NoError(t, err)

	// Supported language: only entries with text for it.
	hi := cat.EntriesForLanguage("hi")
	require.Len(t, hi, 1)
	assert.Equal(t, "both", hi[0].ID)

	assert.Len(t, cat.EntriesForLanguage("en"), 2)

	// Unsupported language falls back to the full catalog: phrase
	// comparison is textual and still works.
	assert.Len(t, cat.EntriesForLanguage("fr"), 2)
}

func TestAnswerFor(t *testing.T) {
	cat, err := Parse([]byte(`[
		{"id": "a", "question": {"en": "One?"}, "answer": {"en": "english answer"}}
	]`))
	require.NoError(t, err)
	entry := cat.Entries()[0]

	answer, ok := entry.AnswerFor("en")
	assert.True(t, ok)
	assert.Equal(t, "english answer", answer)

	// Missing language falls back to any available answer and flags
	// the data gap.
	answer, ok = entry.AnswerFor("hi")
	assert.False(t, ok)
	assert.Equal(t, "english answer", answer)
}

func TestParaphrasesOptional(t *testing.T) {
	cat, err := Parse([]byte(`[
		{"id": "a", "question": {"en": "One?"}, "answer": {"en": "1"}}
	]`))
	require.NoError(t, err)
	assert.Len(t, cat.Entries()[0].Variants("en"), 1)
}
