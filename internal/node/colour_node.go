package node

import "strings"

// Colour parses a colour spec (and, if present, applies a modifier)
// through the EvalContext's ColourProcessor collaborator.
type Colour struct {
	Spec     Node
	Mode     string // recognised mode name, or "" for the processor's default
	Modifier Node   // optional
}

func (c *Colour) Get(ctx *EvalContext) (string, error) {
	spec, err := c.Spec.Get(ctx)
	if err != nil {
		return "", err
	}
	col, err := ctx.Colour.ParseSpec(spec, c.Mode)
	if err != nil {
		return "", Wrap(ExternalFailure, err, "colour parse failed: %s", spec)
	}
	if c.Modifier != nil {
		modspec, err := c.Modifier.Get(ctx)
		if err != nil {
			return "", err
		}
		col, err = ctx.Colour.Modify(modspec, col)
		if err != nil {
			return "", Wrap(ExternalFailure, err, "colour modify failed: %s", modspec)
		}
	}
	return col.Format(), nil
}

func (c *Colour) Clone(cc *CloneContext) (Node, error) {
	spec, err := c.Spec.Clone(cc)
	if err != nil {
		return nil, err
	}
	result := &Colour{Spec: spec, Mode: c.Mode}
	if c.Modifier != nil {
		mod, err := c.Modifier.Clone(cc)
		if err != nil {
			return nil, err
		}
		result.Modifier = mod
	}
	return result, nil
}

// Gradient interpolates a colour across ordered, comma-separated stops
// (spec's Gradient variant). Position selects where along the gradient
// to sample: 0 is the first stop, 1 is the last, and values outside
// [0, 1] clamp to the nearest end stop.
type Gradient struct {
	Stops    Node
	Position Node
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (g *Gradient) Get(ctx *EvalContext) (string, error) {
	stopsStr, err := g.Stops.Get(ctx)
	if err != nil {
		return "", err
	}
	raw := strings.Split(stopsStr, ",")
	stops := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			stops = append(stops, s)
		}
	}
	if len(stops) < 2 {
		return "", Errf(ParseError, "gradient needs at least 2 stops, got %d", len(stops))
	}
	t, err := AsFloat(ctx, g.Position)
	if err != nil {
		return "", err
	}
	t = clampUnit(t)

	segments := len(stops) - 1
	scaled := t * float64(segments)
	idx := int(scaled)
	if idx >= segments {
		idx = segments - 1
	}
	localT := scaled - float64(idx)

	c1, err := ctx.Colour.ParseSpec(stops[idx], "")
	if err != nil {
		return "", Wrap(ExternalFailure, err, "gradient stop %d", idx)
	}
	c2, err := ctx.Colour.ParseSpec(stops[idx+1], "")
	if err != nil {
		return "", Wrap(ExternalFailure, err, "gradient stop %d", idx+1)
	}
	return ctx.Colour.Blend(c1, c2, localT).Format(), nil
}

func (g *Gradient) Clone(cc *CloneContext) (Node, error) {
	stops, err := g.Stops.Clone(cc)
	if err != nil {
		return nil, err
	}
	pos, err := g.Position.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Gradient{Stops: stops, Position: pos}, nil
}
