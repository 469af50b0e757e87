package node

import (
	"sort"
	"strings"

	"github.com/quandangv/lini/internal/tstring"
)

// invalidPathChars lists the characters spec §3 forbids in a path
// segment, mirroring original_source/src/wrapper.cpp's check_name guard.
const invalidPathChars = " #$\"'(){}[]"

// Wrapper is both a tree container (a mapping from path segments to
// child Slots, addressable by dotted path) and a Node variant whose Get
// delegates to an optional value node — the same duality the original
// keeps by putting wrapper.cpp inside namespace lini::node (see
// SPEC_FULL.md's package-layout note).
type Wrapper struct {
	// Value is this wrapper's own node, set by `add` when the path ends
	// exactly at this wrapper (spec: "Inserting at an existing Wrapper
	// slot sets its value"). Nil if the wrapper exists only as an
	// intermediate path segment.
	Value Node

	children map[string]*Slot
	order    []string // insertion order, for iterate_children (spec §9 OQ2)
}

// NewWrapper returns an empty Wrapper.
func NewWrapper() *Wrapper {
	return &Wrapper{children: make(map[string]*Slot)}
}

// Get implements Node: a Wrapper with no value renders as "".
func (w *Wrapper) Get(ctx *EvalContext) (string, error) {
	if w.Value == nil {
		return "", nil
	}
	return w.Value.Get(ctx)
}

func validatePathSegment(seg string) error {
	if i := strings.IndexAny(seg, invalidPathChars); i >= 0 {
		return Errf(ParseError, "invalid character %q in path segment %q", seg[i], seg)
	}
	return nil
}

// Add installs value at path, creating intermediate Wrappers as needed,
// and returns the Slot it now occupies. Splitting happens on the first
// dot in each remaining path component (spec §4.3).
//
// If the leaf slot is empty, value is installed directly. If the leaf
// slot already holds a Wrapper, that wrapper's Value field is set
// instead (so a key can have both a value and children, e.g. `a.b = bar`
// followed later by `a = foo`). Otherwise — a non-Wrapper value
// already occupies the leaf — DuplicateKey is reported.
func (w *Wrapper) Add(path string, value Node) (*Slot, error) {
	raw := path
	view := tstring.Of(&raw).Trim()
	return w.add(view, value)
}

func (w *Wrapper) add(path tstring.String, value Node) (*Slot, error) {
	head, found := path.CutFront('.')
	if found {
		seg := head.Raw()
		if err := validatePathSegment(seg); err != nil {
			return nil, err
		}
		child, err := w.childWrapper(seg)
		if err != nil {
			return nil, err
		}
		return child.add(path, value)
	}

	seg := path.Raw()
	if err := validatePathSegment(seg); err != nil {
		return nil, err
	}
	slot, exists := w.children[seg]
	if !exists {
		slot = NewSlot(value)
		w.setChild(seg, slot)
		return slot, nil
	}
	if existingWrapper, ok := slot.Value.(*Wrapper); ok {
		existingWrapper.Value = value
		return slot, nil
	}
	if slot.Value == nil {
		slot.Value = value
		return slot, nil
	}
	return nil, Errf(DuplicateKey, "duplicate key %q", seg)
}

// childWrapper returns (creating if necessary) the Wrapper living at
// segment seg of w, promoting a plain slot into one if needed.
func (w *Wrapper) childWrapper(seg string) (*Wrapper, error) {
	slot, exists := w.children[seg]
	if !exists {
		child := NewWrapper()
		slot = NewSlot(child)
		w.setChild(seg, slot)
		return child, nil
	}
	if wrp, ok := slot.Value.(*Wrapper); ok {
		return wrp, nil
	}
	if slot.Value == nil {
		child := NewWrapper()
		slot.Value = child
		return child, nil
	}
	// Promote a non-wrapper leaf into a wrapper carrying it as its value,
	// matching wrapper::add's "wrap(ptr)" path in original_source.
	child := NewWrapper()
	child.Value = slot.Value
	slot.Value = child
	return child, nil
}

// EnsurePath descends path from w, creating and promoting intermediate
// Wrappers as needed, and returns the wrapper directly containing the
// final segment plus that segment's Slot (whose Value is itself a
// *Wrapper). Every key added through the document loader goes through
// EnsurePath rather than Add, so that the key's own wrapper object is
// stable and already linked into the tree before its raw value is
// parsed — this is what lets ParseContext.Current (the key's own
// wrapper) be a valid merge target for `clone` and a valid anchor for
// "."-prefixed addresses, even before any of the key's own children
// have been declared. Add (above) remains for callers, mostly tests,
// that want to install an already-built Node without this promotion.
func (w *Wrapper) EnsurePath(path string) (parent *Wrapper, slot *Slot, err error) {
	raw := path
	view := tstring.Of(&raw).Trim()
	current := w
	for {
		head, found := view.CutFront('.')
		seg := head.Raw()
		if verr := validatePathSegment(seg); verr != nil {
			return nil, nil, verr
		}
		if found {
			child, cerr := current.childWrapper(seg)
			if cerr != nil {
				return nil, nil, cerr
			}
			current = child
			continue
		}
		if _, cerr := current.childWrapper(seg); cerr != nil {
			return nil, nil, cerr
		}
		return current, current.children[seg], nil
	}
}

// HasChildren reports whether w has any declared children. The document
// loader wraps every key in a Wrapper (EnsurePath above) so that a key's
// own anchor is stable for "."-addressing and forward rel/child
// references even before it has any children — so a Go type assertion
// alone can't tell a genuine nested section apart from a scalar key's
// empty shell. HasChildren is that distinction; `clone` (parse/dispatch.go)
// uses it to decide whether an argument merges or must be the final,
// plainly-cloned one.
func (w *Wrapper) HasChildren() bool {
	return len(w.order) > 0
}

func (w *Wrapper) setChild(seg string, slot *Slot) {
	if _, exists := w.children[seg]; !exists {
		w.order = append(w.order, seg)
	}
	w.children[seg] = slot
}

// GetChildPtr descends path, returning the Slot at that address or nil
// if any intermediate segment is missing or is not a Wrapper.
func (w *Wrapper) GetChildPtr(path string) *Slot {
	raw := path
	view := tstring.Of(&raw).Trim()
	return w.getChildPtr(view)
}

func (w *Wrapper) getChildPtr(path tstring.String) *Slot {
	head, found := path.CutFront('.')
	if found {
		slot, ok := w.children[head.Raw()]
		if !ok {
			return nil
		}
		child, ok := slot.Value.(*Wrapper)
		if !ok {
			return nil
		}
		return child.getChildPtr(path)
	}
	return w.children[path.Raw()]
}

// GetChild evaluates the node at path, returning (value, true), or
// (_, false) if the path is missing or evaluation fails.
func (w *Wrapper) GetChild(ctx *EvalContext, path string) (string, bool) {
	slot := w.GetChildPtr(path)
	if slot == nil || slot.Value == nil {
		return "", false
	}
	v, err := slot.Value.Get(ctx)
	if err != nil {
		return "", false
	}
	return v, true
}

// Set delegates to the Settable target at path, if any, reporting
// whether the write took place.
func (w *Wrapper) Set(ctx *EvalContext, path, value string) bool {
	slot := w.GetChildPtr(path)
	if slot == nil || slot.Value == nil {
		return false
	}
	settable, ok := slot.Value.(Settable)
	if !ok {
		return false
	}
	return settable.Set(ctx, value) == nil
}

// IterateChildren visits direct children only, in insertion order
// (spec §9 OQ2 — required for round-tripping serialization).
func (w *Wrapper) IterateChildren(visit func(name string, slot *Slot)) {
	for _, name := range w.order {
		visit(name, w.children[name])
	}
}

// SortedNames returns the direct child names sorted lexically; used
// only by tests and diagnostics that want deterministic-but-not-
// insertion-order output.
func (w *Wrapper) SortedNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	sort.Strings(names)
	return names
}

// Clone deep-copies the subtree rooted at w (spec §4.5). It pushes
// (w, result) onto cc's ancestor list before recursing so that
// AddressRefs discovered deeper in the subtree can detect that their
// anchor is being cloned and rebind to the copy.
func (w *Wrapper) Clone(cc *CloneContext) (Node, error) {
	result := NewWrapper()
	cc.PushAncestor(w, result)
	defer cc.PopAncestor()

	if w.Value != nil {
		v, err := w.Value.Clone(cc)
		if err := cc.ReportError(wrapCloneErr(err)); err != nil {
			return nil, err
		} else if v != nil {
			result.Value = v
		}
	}

	for _, name := range w.order {
		slot := w.children[name]
		if slot == nil || slot.Value == nil {
			continue
		}
		childPath := name
		if cc.CurrentPath != "" {
			childPath = cc.CurrentPath + "." + name
		}
		childCC := cc.WithPath(childPath)
		copied, err := slot.Value.Clone(childCC)
		cc.Errors = append(cc.Errors, childCC.Errors...)
		if err := cc.ReportError(err); err != nil {
			return nil, err
		}
		if copied != nil {
			result.setChild(name, NewSlot(copied))
		}
	}
	return result, nil
}

// wrapCloneErr passes through a nil error unchanged so callers can feed
// the (value, err) pair from a child Clone directly into ReportError.
func wrapCloneErr(err error) error { return err }

// Merge folds src's children into w (spec §4.6 `clone` with multiple
// arguments): existing keys in w are preserved, new keys from src are
// added, and a name that exists as a non-Wrapper in both, or as a
// Wrapper carrying its own value in both, raises MergeConflict.
func (w *Wrapper) Merge(src *Wrapper, cc *CloneContext) error {
	for _, name := range src.order {
		srcSlot := src.children[name]
		if srcSlot == nil || srcSlot.Value == nil {
			continue
		}
		copied, err := srcSlot.Value.Clone(cc.WithPath(name))
		if err != nil {
			return err
		}
		dstSlot, exists := w.children[name]
		if !exists {
			w.setChild(name, NewSlot(copied))
			continue
		}
		dstWrapper, dstIsWrapper := dstSlot.Value.(*Wrapper)
		srcWrapper, srcIsWrapper := copied.(*Wrapper)
		switch {
		case dstIsWrapper && srcIsWrapper:
			if err := dstWrapper.Merge(srcWrapper, cc.WithPath(name)); err != nil {
				return err
			}
			if srcWrapper.Value != nil {
				if dstWrapper.Value != nil {
					return Errf(MergeConflict, "merge conflict on value of key %q", name)
				}
				dstWrapper.Value = srcWrapper.Value
			}
		case dstSlot.Value == nil:
			dstSlot.Value = copied
		default:
			return Errf(MergeConflict, "merge conflict on key %q", name)
		}
	}
	return nil
}

// Wrapper has no Optimize method: Wrappers are never themselves
// replaced. The document loader's optimizeAll pass optimises each
// loaded key's Wrapper.Value in place instead.
