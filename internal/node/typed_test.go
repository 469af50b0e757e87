package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsIntPrefersIntGetter(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := AsInt(ctx, &Clock{TickMs: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)
}

func TestAsIntFallsBackToParsingGet(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := AsInt(ctx, &PlainString{Val: " 42 "})
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
}

func TestAsIntFailsOnUnparsable(t *testing.T) {
	ctx, _ := newTestCtx()
	_, err := AsInt(ctx, &PlainString{Val: "abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, Sentinel(TypeMismatch))
}

func TestAsFloatPrefersFloatGetter(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := AsFloat(ctx, &Smooth{Target: &PlainFloat{Val: 3}, Factor: 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestAsFloatFallsBackToParsingGet(t *testing.T) {
	ctx, _ := newTestCtx()
	v, err := AsFloat(ctx, &PlainString{Val: "3.5"})
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}
