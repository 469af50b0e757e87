package node

import "strconv"

// Map linearly remaps Value from [FromMin, FromMin+FromRange] to
// [ToMin, ToMin+ToRange]. Per spec §9 Open Question 1, the output is
// clamped to the destination interval (test scenario §8.4: `${map 5:10
// 0:2 20}` must render "2", not the unclamped extrapolation "6").
type MapNode struct {
	Value                          Node
	FromMin, FromRange             float64
	ToMin, ToRange                 float64
}

func (m *MapNode) GetFloat(ctx *EvalContext) (float64, error) {
	v, err := AsFloat(ctx, m.Value)
	if err != nil {
		return 0, err
	}
	raw := m.ToMin + (v-m.FromMin)*m.ToRange/m.FromRange
	lo, hi := m.ToMin, m.ToMin+m.ToRange
	if lo > hi {
		lo, hi = hi, lo
	}
	if raw < lo {
		raw = lo
	}
	if raw > hi {
		raw = hi
	}
	return raw, nil
}

func (m *MapNode) Get(ctx *EvalContext) (string, error) {
	v, err := m.GetFloat(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func (m *MapNode) Clone(cc *CloneContext) (Node, error) {
	v, err := m.Value.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &MapNode{Value: v, FromMin: m.FromMin, FromRange: m.FromRange, ToMin: m.ToMin, ToRange: m.ToRange}, nil
}
