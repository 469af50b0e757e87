package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesOnceThenCaches(t *testing.T) {
	ctx, _ := newTestCtx()
	value := &countingNode{value: "first"}
	s := &Save{Value: value, Target: &PlainString{Val: "/out.txt"}}

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	contents, ok := ctx.FS.ReadFile("/out.txt")
	require.True(t, ok)
	assert.Equal(t, "first", contents)

	value.value = "second"
	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", v, "repeat Get must return the cached value, not re-evaluate")
	assert.Equal(t, 1, value.calls)
}

func TestSaveReportsExternalFailureOnWriteError(t *testing.T) {
	ctx, _ := newTestCtx()
	ctx.FS = failingFS{}
	s := &Save{Value: &PlainString{Val: "v"}, Target: &PlainString{Val: "/out"}}
	_, err := s.Get(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, Sentinel(ExternalFailure))
}

type failingFS struct{}

func (failingFS) ReadFile(path string) (string, bool) { return "", false }
func (failingFS) WriteFile(path, contents string) bool { return false }
