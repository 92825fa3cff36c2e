package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Stemmer.MinStemLength)
	assert.Equal(t, "e", cfg.Scoring.LogBase)
	assert.Equal(t, "raw", cfg.Scoring.Weighting)
	assert.Equal(t, 5, cfg.Scoring.TopTerms)
	assert.False(t, cfg.Normalizer.DropNumeric)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  log_base: \"10\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "10", cfg.Scoring.LogBase)
	assert.Equal(t, "raw", cfg.Scoring.Weighting)
	assert.Equal(t, 3, cfg.Stemmer.MinStemLength)
}

func TestLoadRejectsUnknownLogBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  log_base: \"2\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownWeighting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  weighting: \"squared\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := &AppConfig{
		Normalizer: NormalizerConfig{DropNumeric: true},
		Stopwords:  StopwordsConfig{Path: "stopwords.txt"},
		Stemmer:    StemmerConfig{MinStemLength: 4},
		Scoring:    ScoringConfig{LogBase: "10", Weighting: "relative", TopTerms: 7},
		Output:     OutputConfig{Dir: "out", WriteFiles: true},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
