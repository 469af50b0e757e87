package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColourParsesSpecThroughProcessor(t *testing.T) {
	ctx, _ := newTestCtx()
	c := &Colour{Spec: &PlainString{Val: "#ff0000"}}
	v, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", v)
}

func TestColourAppliesModifier(t *testing.T) {
	ctx, _ := newTestCtx()
	c := &Colour{Spec: &PlainString{Val: "#ff0000"}, Modifier: &PlainString{Val: "+l0.1"}}
	v, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000+l0.1", v)
}

func TestGradientNeedsAtLeastTwoStops(t *testing.T) {
	ctx, _ := newTestCtx()
	g := &Gradient{Stops: &PlainString{Val: "#000"}, Position: &PlainFloat{Val: 0}}
	_, err := g.Get(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, Sentinel(ParseError))
}

func TestGradientBlendsBetweenNearestStops(t *testing.T) {
	ctx, _ := newTestCtx()
	g := &Gradient{Stops: &PlainString{Val: "#000, #888, #fff"}, Position: &PlainFloat{Val: 0.9}}
	v, err := g.Get(ctx)
	require.NoError(t, err)
	// position 0.9 across 2 segments lands in the second segment at
	// localT=0.8, which fakeColour.Blend resolves to that segment's end
	// stop, "#fff".
	assert.Equal(t, "#fff", v)
}

func TestGradientClampsOutOfRangePosition(t *testing.T) {
	ctx, _ := newTestCtx()
	g := &Gradient{Stops: &PlainString{Val: "#000, #fff"}, Position: &PlainFloat{Val: 5}}
	v, err := g.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#fff", v)
}
