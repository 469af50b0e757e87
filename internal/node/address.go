package node

// AddressRef resolves path against anchor at evaluation time, producing
// a shared handle to the target Slot (spec §4.4). The generic "?
// fallback" tail the grammar allows on any expression is realized by
// the parser wrapping an AddressRef (or any other node) in a
// FallbackWrapper, not by a fallback field on AddressRef itself — this
// matches the actual construction sites in
// original_source/include/node/parse.hxx, where address_ref is always
// built with exactly (anchor, path) and fallback_wrapper is layered on
// separately when prep.has_fallback().
type AddressRef struct {
	Anchor *Wrapper
	Path   string

	cachedSlot *Slot
}

func (r *AddressRef) resolve() (*Slot, error) {
	if r.cachedSlot == nil {
		slot := r.Anchor.GetChildPtr(r.Path)
		if slot == nil {
			return nil, Errf(KeyNotFound, "key not found: %s", r.Path)
		}
		r.cachedSlot = slot
	}
	return r.cachedSlot, nil
}

func (r *AddressRef) Get(ctx *EvalContext) (string, error) {
	slot, err := r.resolve()
	if err != nil {
		return "", err
	}
	if slot.Value == nil {
		return "", Errf(KeyNotFound, "key not found: %s", r.Path)
	}
	if err := ctx.EnterSlot(slot); err != nil {
		return "", err
	}
	defer ctx.LeaveSlot(slot)
	return slot.Value.Get(ctx)
}

func (r *AddressRef) GetInt(ctx *EvalContext) (int64, error) {
	slot, err := r.resolve()
	if err != nil {
		return 0, err
	}
	if slot.Value == nil {
		return 0, Errf(KeyNotFound, "key not found: %s", r.Path)
	}
	if err := ctx.EnterSlot(slot); err != nil {
		return 0, err
	}
	defer ctx.LeaveSlot(slot)
	return AsInt(ctx, slot.Value)
}

func (r *AddressRef) GetFloat(ctx *EvalContext) (float64, error) {
	slot, err := r.resolve()
	if err != nil {
		return 0, err
	}
	if slot.Value == nil {
		return 0, Errf(KeyNotFound, "key not found: %s", r.Path)
	}
	if err := ctx.EnterSlot(slot); err != nil {
		return 0, err
	}
	defer ctx.LeaveSlot(slot)
	return AsFloat(ctx, slot.Value)
}

// Set delegates to the resolved target if it is Settable (spec §4.4
// "readonly and set are forwarded if the resolved node is Settable").
func (r *AddressRef) Set(ctx *EvalContext, value string) error {
	slot, err := r.resolve()
	if err != nil {
		return err
	}
	if slot.Value == nil {
		return Errf(KeyNotFound, "key not found: %s", r.Path)
	}
	settable, ok := slot.Value.(Settable)
	if !ok {
		return Errf(TypeMismatch, "target is not settable: %s", r.Path)
	}
	return settable.Set(ctx, value)
}

// Clone rebinds Anchor to its clone if Anchor is one of the wrappers
// currently being cloned, so that an address pointing inside the
// cloned region now points into the copy (spec §4.5). A fresh
// AddressRef never carries over the previous cachedSlot — it must
// re-resolve against the (possibly new) anchor.
func (r *AddressRef) Clone(cc *CloneContext) (Node, error) {
	anchor := r.Anchor
	if mapped, ok := cc.Mapped(r.Anchor); ok {
		anchor = mapped
	}
	return &AddressRef{Anchor: anchor, Path: r.Path}, nil
}

// UpRef returns the dotted path of its anchor's parent (spec's UpRef
// variant, produced by the `..` operator). Our Wrapper type keeps no
// back-pointer to its own dotted path (unlike a tree that tracks
// parent pointers), so UpRef instead captures the already-resolved
// parent path as a plain string at parse time; since `${..}` addresses
// are static relative to where they're declared, the rendered result
// is identical to resolving a live anchor-parent pointer at get time.
type UpRef struct {
	ParentPath string
}

// Optimize inlines the referenced value when it is already a Plain
// literal at parse time (SPEC_FULL.md supplement 2, mirroring
// soft_local_ref::get_optimized in original_source/include/string_ref.hpp).
// When the target slot holds a Wrapper (as every document-loaded key
// does), the Wrapper's own Value is the one inspected. Since AddressRef never carries its own fallback field — see the type's
// doc comment — this applies to every AddressRef that resolves cleanly;
// one wrapped in a FallbackWrapper is never reached by Optimize because
// FallbackWrapper itself doesn't implement Optimizer.
func (r *AddressRef) Optimize() (Node, bool) {
	slot, err := r.resolve()
	if err != nil || slot.Value == nil {
		return nil, false
	}
	target := slot.Value
	if wrp, ok := target.(*Wrapper); ok {
		target = wrp.Value
	}
	switch target.(type) {
	case *PlainString, *PlainInt, *PlainFloat:
		return target, true
	default:
		return nil, false
	}
}

func (u *UpRef) Get(ctx *EvalContext) (string, error) { return u.ParentPath, nil }
func (u *UpRef) Clone(cc *CloneContext) (Node, error) {
	return &UpRef{ParentPath: u.ParentPath}, nil
}
