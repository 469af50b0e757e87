package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTicksFromFirstGet(t *testing.T) {
	ctx, clk := newTestCtx()
	c := &Clock{TickMs: 10}

	v, err := c.GetInt(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v, "zero point is the first Get, not construction")

	clk.advance(25)
	v, err = c.GetInt(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)
}

func TestClockLoopsWhenSet(t *testing.T) {
	ctx, clk := newTestCtx()
	c := &Clock{TickMs: 10, Loop: 3}
	_, _ = c.GetInt(ctx)

	clk.advance(100)
	v, err := c.GetInt(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10%3, v)
}

func TestClockRejectsNonPositiveTick(t *testing.T) {
	ctx, _ := newTestCtx()
	c := &Clock{TickMs: 0}
	_, err := c.GetInt(ctx)
	require.Error(t, err)
}

func TestSmoothSnapsOnFirstGet(t *testing.T) {
	ctx, _ := newTestCtx()
	s := &Smooth{Target: &PlainFloat{Val: 10}, Factor: 0.5}
	v, err := s.GetFloat(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestSmoothFollowsTargetGradually(t *testing.T) {
	ctx, _ := newTestCtx()
	target := &SettablePlainFloat{Val: 0}
	s := &Smooth{Target: target, Factor: 0.5}
	_, _ = s.GetFloat(ctx)

	target.Val = 10
	v, err := s.GetFloat(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = s.GetFloat(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
}
