package frequency

import (
	"errors"
	"math"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
)

// ErrEmptyCorpus is returned when IDF is requested for a corpus with no
// documents; log(N/DF) is undefined at N=0.
var ErrEmptyCorpus = errors.New("empty corpus: cannot compute IDF")

// NaturalLog selects natural-log IDF; any base > 1 selects that base.
const NaturalLog = math.E

// TermFrequency counts occurrences of each distinct token in a document.
// The sum of the counts equals len(tokens); zero counts are absent.
func TermFrequency(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// DocumentFrequency counts, for each distinct term across the corpus, the
// number of documents containing it at least once.
func DocumentFrequency(docs []domain.TokenizedDocument) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc.Tokens))
		for _, tok := range doc.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	return df
}

// IDF derives the inverse document frequency table from a DF table and
// the corpus size n using the smoothed formula
//
//	idf = log((1+N) / (1+DF)) + 1
//
// so that terms present in every document keep a small positive weight
// instead of zeroing out. base selects the logarithm base; NaturalLog (or
// any value <= 1) means natural log. The base is fixed for the whole
// table, never mixed within a run.
func IDF(df map[string]int, n int, base float64) (map[string]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyCorpus
	}
	logDenom := 1.0
	if base > 1 && base != math.E {
		logDenom = math.Log(base)
	}
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+count))/logDenom + 1.0
	}
	return idf, nil
}
