// Package colour implements the node.ColourProcessor collaborator
// (spec §6) on top of github.com/lucasb-eyer/go-colorful, the colour
// library several manifests in the retrieved example pack pull in as an
// indirect dependency for palette/gradient work.
package colour

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/quandangv/lini/internal/node"
)

// Value wraps a colorful.Color to satisfy node.Colour.
type Value struct {
	c colorful.Color
}

func (v Value) Format() string {
	return v.c.Hex()
}

// Processor is the production node.ColourProcessor.
type Processor struct{}

func New() *Processor { return &Processor{} }

// ParseSpec parses spec under mode (""  or "hex" for "#rrggbb", "hsl"
// for "h,s,l" with h in degrees and s/l in [0,1], "rgb" for "r,g,b" with
// components in [0,255]). An empty mode tries hex first, then falls
// back to hsl-style comma triples, matching Gradient's bare stop list.
func (p *Processor) ParseSpec(spec string, mode string) (node.Colour, error) {
	spec = strings.TrimSpace(spec)
	switch mode {
	case "", "hex":
		if c, err := colorful.Hex(spec); err == nil {
			return Value{c}, nil
		}
		if mode == "hex" {
			return nil, node.Errf(node.ParseError, "invalid hex colour: %q", spec)
		}
		fallthrough
	case "hsl":
		h, s, l, err := parseTriple(spec)
		if err != nil {
			return nil, err
		}
		return Value{colorful.Hsl(h, s, l)}, nil
	case "rgb":
		r, g, b, err := parseTriple(spec)
		if err != nil {
			return nil, err
		}
		return Value{colorful.Color{R: r / 255, G: g / 255, B: b / 255}}, nil
	default:
		return nil, node.Errf(node.ParseError, "unrecognised colour mode: %q", mode)
	}
}

func parseTriple(spec string) (a, b, c float64, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return 0, 0, 0, node.Errf(node.ParseError, "expected 3 comma-separated components, got %q", spec)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, node.Wrap(node.ParseError, err, "bad colour component %q", p)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

// Modify applies a small HSL-nudge language to c: tokens of the form
// "+h30", "-s0.1", "+l0.2" (also space-separated: "+h 30") adjust hue,
// saturation, lightness respectively; hue wraps mod 360, saturation and
// lightness clamp to [0, 1].
func (p *Processor) Modify(modspec string, c node.Colour) (node.Colour, error) {
	v, ok := c.(Value)
	if !ok {
		return nil, node.Errf(node.TypeMismatch, "modify: not a colour.Value")
	}
	h, s, l := v.c.Hsl()
	fields := strings.Fields(modspec)
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		if len(tok) < 2 {
			return nil, node.Errf(node.ParseError, "bad colour modifier %q", tok)
		}
		sign := tok[0]
		if sign != '+' && sign != '-' {
			return nil, node.Errf(node.ParseError, "colour modifier must start with + or -: %q", tok)
		}
		axis := tok[1]
		numStr := tok[2:]
		if numStr == "" && i+1 < len(fields) {
			i++
			numStr = fields[i]
		}
		amount, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, node.Wrap(node.ParseError, err, "bad colour modifier amount %q", tok)
		}
		if sign == '-' {
			amount = -amount
		}
		switch axis {
		case 'h':
			h = wrapDegrees(h + amount)
		case 's':
			s = clampUnit(s + amount)
		case 'l':
			l = clampUnit(l + amount)
		default:
			return nil, node.Errf(node.ParseError, "unknown colour modifier axis %q", string(axis))
		}
	}
	return Value{colorful.Hsl(h, s, l)}, nil
}

// Blend interpolates two colours in Lab space at position t (spec's
// Gradient variant), which tracks human colour perception more evenly
// than a raw RGB lerp.
func (p *Processor) Blend(a, b node.Colour, t float64) node.Colour {
	va, aok := a.(Value)
	vb, bok := b.(Value)
	if !aok || !bok {
		return a
	}
	return Value{va.c.BlendLab(vb.c, t)}
}

func wrapDegrees(d float64) float64 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
