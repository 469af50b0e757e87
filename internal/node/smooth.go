package node

import "strconv"

// Smooth is an exponentially smoothed numeric follower of Target (spec's
// Smooth variant): each Get moves its running value a Factor fraction of
// the way toward Target's current value. The first Get snaps directly
// to Target so the follower doesn't start at zero.
type Smooth struct {
	Target Node
	Factor float64

	have    bool
	current float64
}

func (s *Smooth) GetFloat(ctx *EvalContext) (float64, error) {
	target, err := AsFloat(ctx, s.Target)
	if err != nil {
		return 0, err
	}
	if !s.have {
		s.current = target
		s.have = true
		return s.current, nil
	}
	s.current += (target - s.current) * s.Factor
	return s.current, nil
}

func (s *Smooth) Get(ctx *EvalContext) (string, error) {
	v, err := s.GetFloat(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func (s *Smooth) Clone(cc *CloneContext) (Node, error) {
	target, err := s.Target.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Smooth{Target: target, Factor: s.Factor}, nil
}
