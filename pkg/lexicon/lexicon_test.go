package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	lex := Default()
	require.NoError(t, lex.Validate())
	assert.NotEmpty(t, lex.Version)
	assert.NotEmpty(t, lex.FillerWords)
	assert.NotEmpty(t, lex.HedgingPhrases)
	assert.NotEmpty(t, lex.JargonTerms)
	assert.NotEmpty(t, lex.Persuasion.CallToAction)
}

func TestLoadFile(t *testing.T) {
	content := `
version: "test-1"
filler_words:
  Um: 1
  "You Know": 2
hedging_phrases:
  "I Think": 2
jargon_terms:
  - Synergy
persuasion:
  call_to_action:
    - Now
  power_words:
    - Proven
  evidence_indicators:
    - "Studies Show"
`
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-1", lex.Version)

	// Terms are normalized to lowercase on load
	assert.Equal(t, 1, lex.FillerWords["um"])
	assert.Equal(t, 2, lex.FillerWords["you know"])
	assert.Equal(t, 2, lex.HedgingPhrases["i think"])
	assert.Contains(t, lex.JargonTerms, "synergy")
	assert.Contains(t, lex.Persuasion.EvidenceIndicators, "studies show")
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing version",
			content: "filler_words:\n  um: 1\nhedging_phrases:\n  maybe: 1\n",
		},
		{
			name:    "no filler words",
			content: "version: \"v\"\nhedging_phrases:\n  maybe: 1\n",
		},
		{
			name:    "non-positive weight",
			content: "version: \"v\"\nfiller_words:\n  um: 0\nhedging_phrases:\n  maybe: 1\n",
		},
		{
			name:    "malformed yaml",
			content: "version: [unclosed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexicon.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStoreSwap(t *testing.T) {
	store := NewStore(Default())
	assert.Equal(t, "builtin-1", store.Active().Version)

	replacement := Default()
	replacement.Version = "builtin-2"
	store.Swap(replacement)
	assert.Equal(t, "builtin-2", store.Active().Version)
}

func TestNewStoreFromFileFallsBack(t *testing.T) {
	store := NewStoreFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, store)
	assert.Equal(t, "builtin-1", store.Active().Version)

	// No backing file means Watch is a no-op
	assert.NoError(t, store.Watch())
	store.Stop()
}
