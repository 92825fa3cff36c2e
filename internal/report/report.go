package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
)

// Round rounds a score half-up to two decimal places for presentation.
// Scoring itself always works on the unrounded values.
func Round(score float64) float64 {
	return math.Floor(score*100+0.5) / 100
}

// Format renders ranked terms as one "term score" line each, scores
// rounded to two decimals.
func Format(terms []domain.TermScore) string {
	var b strings.Builder
	for _, ts := range terms {
		fmt.Fprintf(&b, "%-20s %.2f\n", ts.Term, Round(ts.Score))
	}
	return b.String()
}

// WriteTokens writes a document's preprocessed token sequence to
// preproc_<id> in dir, space-joined.
func WriteTokens(dir string, doc domain.TokenizedDocument) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "preproc_"+doc.ID)
	return os.WriteFile(path, []byte(strings.Join(doc.Tokens, " ")), 0o644)
}

// WriteScores writes a document's ranked terms to tfidf_<id> in dir.
func WriteScores(dir string, ranking domain.RankedTerms) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "tfidf_"+ranking.DocumentID)
	return os.WriteFile(path, []byte(Format(ranking.Terms)), 0o644)
}
