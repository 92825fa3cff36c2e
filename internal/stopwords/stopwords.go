package stopwords

import (
	"bufio"
	"io"
	"strings"
)

// Set is an immutable collection of lowercase stopwords. It is built once
// per run and shared read-only by all documents.
type Set map[string]struct{}

// New builds a Set from the given words, lower-casing each entry.
func New(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// FromReader parses a stopword list with one word per line. Blank lines
// are skipped and surrounding whitespace is trimmed.
func FromReader(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Contains reports whether the token is a stopword. Matching is
// case-insensitive.
func (s Set) Contains(token string) bool {
	_, ok := s[strings.ToLower(token)]
	return ok
}

// Filter returns a new slice holding the tokens whose lower-cased form is
// absent from the set. Empty tokens are dropped. The input slice and the
// set are never mutated.
func (s Set) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || s.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Default returns a built-in English stopword set used when no stopword
// file is configured.
func Default() Set {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	return New(words)
}
