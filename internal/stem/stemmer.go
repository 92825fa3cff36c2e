package stem

import "strings"

// Rule is a single suffix-stripping rule. MinStem guards the length of the
// stem after stripping; a rule whose result would be shorter is skipped
// for that token.
type Rule struct {
	Suffix      string
	Replacement string
	MinStem     int
}

// DefaultMinStem is the minimum stem length applied when a rule does not
// carry its own guard.
const DefaultMinStem = 3

// defaultRules are evaluated in priority order, longest suffixes first.
var defaultRules = []Rule{
	{Suffix: "ment"},
	{Suffix: "ing"},
	{Suffix: "es"},
	{Suffix: "ed"},
	{Suffix: "ly"},
	{Suffix: "s"},
}

// Stemmer reduces tokens to root forms via an ordered rule table. The
// first matching rule that satisfies its length guard wins; at most one
// rule fires per token, with no iterative re-stemming.
type Stemmer struct {
	rules   []Rule
	minStem int
}

// New creates a Stemmer with the default English suffix rules. minStem
// overrides the per-token guard; values below 1 fall back to
// DefaultMinStem.
func New(minStem int) *Stemmer {
	if minStem < 1 {
		minStem = DefaultMinStem
	}
	return &Stemmer{rules: defaultRules, minStem: minStem}
}

// NewWithRules creates a Stemmer using a caller-supplied rule table,
// evaluated in the given order.
func NewWithRules(rules []Rule, minStem int) *Stemmer {
	if minStem < 1 {
		minStem = DefaultMinStem
	}
	return &Stemmer{rules: rules, minStem: minStem}
}

// Stem returns the reduced form of token. Pure function of the token.
func (s *Stemmer) Stem(token string) string {
	for _, r := range s.rules {
		if !strings.HasSuffix(token, r.Suffix) {
			continue
		}
		stem := token[:len(token)-len(r.Suffix)] + r.Replacement
		guard := r.MinStem
		if guard < 1 {
			guard = s.minStem
		}
		if len(stem) < guard {
			continue
		}
		return stem
	}
	return token
}
