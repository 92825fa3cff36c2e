package domain

// Document represents a single raw text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// TokenizedDocument pairs a document ID with its normalized, filtered,
// stemmed token sequence. Immutable once produced by the pipeline.
type TokenizedDocument struct {
	ID     string
	Tokens []string
}

// TermScore is a single scored term.
type TermScore struct {
	Term  string
	Score float64
}

// RankedTerms is the per-document scoring result, sorted by descending
// score with alphabetical tie-breaking.
type RankedTerms struct {
	DocumentID string
	Terms      []TermScore
}

// Tokenizer turns raw text into normalized word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Stemmer reduces a single token to its root form. Implementations must
// be pure functions of the token with no cross-token state.
type Stemmer interface {
	Stem(token string) string
}
