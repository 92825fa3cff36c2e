package stopwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsIsCaseInsensitive(t *testing.T) {
	s := New([]string{"The", "on"})
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("THE"))
	assert.True(t, s.Contains("On"))
	assert.False(t, s.Contains("cat"))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	s := New([]string{"the"})
	in := []string{"the", "cat", "the", "mat"}
	out := s.Filter(in)
	assert.Equal(t, []string{"cat", "mat"}, out)
	assert.Equal(t, []string{"the", "cat", "the", "mat"}, in)
}

func TestFilterDropsEmptyTokens(t *testing.T) {
	s := New(nil)
	assert.Equal(t, []string{"cat"}, s.Filter([]string{"", "cat", ""}))
}

func TestFromReader(t *testing.T) {
	r := strings.NewReader("the\n\n  ON  \ncat\n")
	s, err := FromReader(r)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.True(t, s.Contains("on"))
	assert.True(t, s.Contains("cat"))
}

func TestDefaultContainsCommonWords(t *testing.T) {
	s := Default()
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("is"))
	assert.False(t, s.Contains("frequency"))
}
