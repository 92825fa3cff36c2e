package normalize

import (
	"regexp"
	"strings"
)

// Normalizer cleans raw text and splits it into lowercase word tokens.
// Punctuation and other non-alphanumeric runes act as token separators,
// so "state-of-the-art" yields four tokens rather than one collapsed word.
type Normalizer struct {
	dropNumeric  bool
	urlPattern   *regexp.Regexp
	tokenPattern *regexp.Regexp
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDropNumeric excludes digit-only tokens from the output.
func WithDropNumeric() Option {
	return func(n *Normalizer) { n.dropNumeric = true }
}

// New creates a Normalizer. By default digit-only tokens are kept.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		urlPattern:   regexp.MustCompile(`https?://\S+`),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+`),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Tokenize lower-cases the text, strips URLs, and splits on every run of
// non-alphanumeric runes. Empty input yields a nil slice; consecutive
// separators never produce empty tokens.
func (n *Normalizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := n.urlPattern.ReplaceAllString(text, " ")
	lower := strings.ToLower(cleaned)
	tokens := n.tokenPattern.FindAllString(lower, -1)
	if !n.dropNumeric {
		return tokens
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if isNumeric(tok) {
			continue
		}
		out = append(out, tok)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(tok) > 0
}
