package scorer

import (
	"sort"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
)

// Weighting selects how the TF factor enters the score.
type Weighting string

const (
	// Raw multiplies the raw occurrence count by IDF.
	Raw Weighting = "raw"
	// Relative divides the count by the document token total first.
	Relative Weighting = "relative"
)

// Score combines a document's TF table with the corpus IDF table into a
// ranked term list: score = TF(term) x IDF(term), sorted by descending
// score with ties broken by ascending lexical term order. Terms missing
// from the IDF table score 0. Pure function of its inputs.
func Score(tf map[string]int, idf map[string]float64, w Weighting) []domain.TermScore {
	if len(tf) == 0 {
		return nil
	}
	total := 0
	for _, count := range tf {
		total += count
	}
	out := make([]domain.TermScore, 0, len(tf))
	for term, count := range tf {
		weight := float64(count)
		if w == Relative && total > 0 {
			weight = float64(count) / float64(total)
		}
		out = append(out, domain.TermScore{Term: term, Score: weight * idf[term]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// TopK returns the first k entries of a ranked term list. k <= 0 or
// k beyond the list length returns the whole list.
func TopK(terms []domain.TermScore, k int) []domain.TermScore {
	if k <= 0 || k > len(terms) {
		return terms
	}
	return terms[:k]
}
