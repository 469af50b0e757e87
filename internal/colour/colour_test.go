package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecHex(t *testing.T) {
	p := New()
	c, err := p.ParseSpec("#ff0000", "")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Format())
}

func TestParseSpecHsl(t *testing.T) {
	p := New()
	c, err := p.ParseSpec("0, 1, 0.5", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Format())
}

func TestParseSpecRgb(t *testing.T) {
	p := New()
	c, err := p.ParseSpec("0, 255, 0", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.Format())
}

func TestParseSpecUnknownMode(t *testing.T) {
	p := New()
	_, err := p.ParseSpec("x", "cmyk")
	require.Error(t, err)
}

func TestParseSpecBadHexExplicitMode(t *testing.T) {
	p := New()
	_, err := p.ParseSpec("not-a-colour", "hex")
	require.Error(t, err)
}

func TestModifyAdjustsHue(t *testing.T) {
	p := New()
	red, _ := p.ParseSpec("#ff0000", "")
	shifted, err := p.Modify("+h120", red)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", shifted.Format())
}

func TestModifyWrapsHueAroundZero(t *testing.T) {
	p := New()
	red, _ := p.ParseSpec("#ff0000", "")
	shifted, err := p.Modify("-h10", red)
	require.NoError(t, err)
	// hue wraps to 350, still valid and distinct from unclamped negative.
	assert.NotEqual(t, red.Format(), shifted.Format())
}

func TestModifyClampsSaturation(t *testing.T) {
	p := New()
	red, _ := p.ParseSpec("#ff0000", "")
	// pushing saturation far past 1 should clamp rather than error.
	_, err := p.Modify("+s10", red)
	require.NoError(t, err)
}

func TestModifyRejectsBadAxis(t *testing.T) {
	p := New()
	red, _ := p.ParseSpec("#ff0000", "")
	_, err := p.Modify("+z10", red)
	require.Error(t, err)
}

func TestModifySpaceSeparatedAmount(t *testing.T) {
	p := New()
	red, _ := p.ParseSpec("#ff0000", "")
	shifted, err := p.Modify("+h 120", red)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", shifted.Format())
}

func TestBlendInterpolatesInLabSpace(t *testing.T) {
	p := New()
	black, _ := p.ParseSpec("#000000", "")
	white, _ := p.ParseSpec("#ffffff", "")
	mid := p.Blend(black, white, 0.5)
	assert.NotEqual(t, black.Format(), mid.Format())
	assert.NotEqual(t, white.Format(), mid.Format())
}

func TestWrapDegrees(t *testing.T) {
	assert.Equal(t, 350.0, wrapDegrees(-10))
	assert.Equal(t, 10.0, wrapDegrees(370))
	assert.Equal(t, 0.0, wrapDegrees(360))
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, clampUnit(-5))
	assert.Equal(t, 1.0, clampUnit(5))
	assert.Equal(t, 0.5, clampUnit(0.5))
}
