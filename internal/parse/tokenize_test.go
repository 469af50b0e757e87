package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, tokenize("a  b\tc"))
}

func TestTokenizeKeepsQuotedRunTogether(t *testing.T) {
	got := tokenize(`color hsl "+h 30" base`)
	assert.Equal(t, []string{"color", "hsl", `"+h 30"`, "base"}, got)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, tokenize("   "))
}

func TestSplitFallbackFindsStandaloneQuestionMark(t *testing.T) {
	head, fallback, has := splitFallback("a.b ? default")
	assert.True(t, has)
	assert.Equal(t, "a.b ", head)
	assert.Equal(t, " default", fallback)
}

func TestSplitFallbackIgnoresQuestionMarkInsideQuotes(t *testing.T) {
	_, _, has := splitFallback(`var "is this ok?" x`)
	assert.False(t, has)
}

func TestSplitFallbackRequiresWhitespaceBoundary(t *testing.T) {
	_, _, has := splitFallback("a?b")
	assert.False(t, has, "a bare ? with no surrounding whitespace is not a fallback marker")
}

func TestSplitFallbackNoneFound(t *testing.T) {
	_, _, has := splitFallback("plain value")
	assert.False(t, has)
}
