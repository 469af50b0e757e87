package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsComparesKindOnly(t *testing.T) {
	a := Errf(KeyNotFound, "missing %s", "x")
	b := Sentinel(KeyNotFound)
	assert.True(t, errors.Is(a, b))

	c := Errf(ParseError, "bad")
	assert.False(t, errors.Is(a, c))
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("underlying")
	wrapped := Wrap(ExternalFailure, cause, "failed")
	assert.Same(t, cause, errors.Unwrap(wrapped))
}

func TestErrorStringFormatting(t *testing.T) {
	e := Errf(ParseError, "bad token %q", "!!")
	assert.Contains(t, e.Error(), "ParseError")
	assert.Contains(t, e.Error(), `bad token "!!"`)
}

func TestErrKindStringUnknown(t *testing.T) {
	var k ErrKind = 99
	assert.Equal(t, "Unknown", k.String())
}
