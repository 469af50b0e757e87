package node

// FallbackWrapper evaluates Primary and, if it fails, evaluates
// Fallback instead (spec's FallbackWrapper variant). It is what the
// parser installs around any operator whose expression body had a
// trailing `? fallback` tail (spec §4.2 parse_escaped).
type FallbackWrapper struct {
	Primary  Node
	Fallback Node
}

func (f *FallbackWrapper) Get(ctx *EvalContext) (string, error) {
	v, err := f.Primary.Get(ctx)
	if err == nil {
		return v, nil
	}
	if f.Fallback == nil {
		return "", err
	}
	return f.Fallback.Get(ctx)
}

func (f *FallbackWrapper) GetInt(ctx *EvalContext) (int64, error) {
	v, err := AsInt(ctx, f.Primary)
	if err == nil {
		return v, nil
	}
	if f.Fallback == nil {
		return 0, err
	}
	return AsInt(ctx, f.Fallback)
}

func (f *FallbackWrapper) GetFloat(ctx *EvalContext) (float64, error) {
	v, err := AsFloat(ctx, f.Primary)
	if err == nil {
		return v, nil
	}
	if f.Fallback == nil {
		return 0, err
	}
	return AsFloat(ctx, f.Fallback)
}

// Set forwards to Primary when it is Settable; fallback is never
// written through, matching the original's local_ref (the one
// FallbackWrapper descendant with Settable) forwarding only to ref.
func (f *FallbackWrapper) Set(ctx *EvalContext, value string) error {
	settable, ok := f.Primary.(Settable)
	if !ok {
		return Errf(TypeMismatch, "fallback-wrapped node is not settable")
	}
	return settable.Set(ctx, value)
}

func (f *FallbackWrapper) Clone(cc *CloneContext) (Node, error) {
	primary, err := f.Primary.Clone(cc)
	if err != nil {
		return nil, err
	}
	result := &FallbackWrapper{Primary: primary}
	if f.Fallback != nil {
		fb, err := f.Fallback.Clone(cc)
		if err != nil {
			return nil, err
		}
		result.Fallback = fb
	}
	return result, nil
}
