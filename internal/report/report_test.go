package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
)

func TestRoundHalfUp(t *testing.T) {
	assert.InDelta(t, 0.13, Round(0.125), 1e-12)
	assert.InDelta(t, 0.12, Round(0.124), 1e-12)
	assert.InDelta(t, 1.0, Round(1.0), 1e-12)
	assert.InDelta(t, 1.41, Round(1.405465), 1e-12)
}

func TestFormat(t *testing.T) {
	out := Format([]domain.TermScore{
		{Term: "cat", Score: 1.405465},
		{Term: "sat", Score: 1.0},
	})
	assert.Contains(t, out, "cat")
	assert.Contains(t, out, "1.41")
	assert.Contains(t, out, "sat")
	assert.Contains(t, out, "1.00")
}

func TestWriteTokens(t *testing.T) {
	dir := t.TempDir()
	doc := domain.TokenizedDocument{ID: "a.txt", Tokens: []string{"cat", "sat", "mat"}}
	require.NoError(t, WriteTokens(dir, doc))

	data, err := os.ReadFile(filepath.Join(dir, "preproc_a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cat sat mat", string(data))
}

func TestWriteScores(t *testing.T) {
	dir := t.TempDir()
	ranking := domain.RankedTerms{
		DocumentID: "a.txt",
		Terms:      []domain.TermScore{{Term: "cat", Score: 1.5}},
	}
	require.NoError(t, WriteScores(dir, ranking))

	data, err := os.ReadFile(filepath.Join(dir, "tfidf_a.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cat")
	assert.Contains(t, string(data), "1.50")
}
