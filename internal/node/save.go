package node

// Save writes Value's rendered string to the location named by
// Target.Get() the first time it is evaluated, then returns the cached
// value on every later Get without re-writing (spec §9 Open Question 3).
type Save struct {
	Value  Node
	Target Node

	done      bool
	cached    string
	cachedErr error
}

func (s *Save) Get(ctx *EvalContext) (string, error) {
	if s.done {
		return s.cached, s.cachedErr
	}
	s.done = true
	v, err := s.Value.Get(ctx)
	if err != nil {
		s.cachedErr = err
		return "", err
	}
	target, err := s.Target.Get(ctx)
	if err != nil {
		s.cachedErr = err
		return "", err
	}
	if !ctx.FS.WriteFile(target, v) {
		s.cachedErr = Errf(ExternalFailure, "failed to write: %s", target)
		return "", s.cachedErr
	}
	s.cached = v
	return v, nil
}

func (s *Save) Clone(cc *CloneContext) (Node, error) {
	v, err := s.Value.Clone(cc)
	if err != nil {
		return nil, err
	}
	t, err := s.Target.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Save{Value: v, Target: t}, nil
}
