package node

// ParseContext is the state threaded through expression parsing (spec
// §3 "Contexts"): the tree's root, the wrapper the value being parsed
// belongs to, that wrapper's parent, the dotted path of the key being
// parsed, and the mutable backing string the parser's tstring views
// edit in place for escape processing.
type ParseContext struct {
	Root    *Wrapper
	Current *Wrapper
	Parent  *Wrapper

	CurrentPath string
	Raw         *string
}

// Child returns a ParseContext for parsing a value that belongs to
// child, a direct descendant of ctx.Current reached by name.
func (ctx *ParseContext) Child(child *Wrapper, name string) *ParseContext {
	path := name
	if ctx.CurrentPath != "" {
		path = ctx.CurrentPath + "." + name
	}
	return &ParseContext{
		Root:        ctx.Root,
		Current:     child,
		Parent:      ctx.Current,
		CurrentPath: path,
		Raw:         ctx.Raw,
	}
}

// CloneContext is the state threaded through Node.Clone (spec §3
// "Contexts"): the ancestor mapping that lets an AddressRef discover
// that its anchor wrapper was itself cloned, the path being cloned (for
// error reporting), and the strict/lenient error policy.
type CloneContext struct {
	ancestors []ancestorPair

	CurrentPath string
	Strict      bool
	Errors      []CloneError
}

type ancestorPair struct {
	Old, New *Wrapper
}

// CloneError records a non-fatal error collected in lenient clone mode.
type CloneError struct {
	Path    string
	Message string
}

// NewCloneContext builds a CloneContext with the given error policy.
// Strict clone contexts (used by the `clone` operator, spec §4.6) stop
// at the first error; lenient ones accumulate errors and continue.
func NewCloneContext(strict bool) *CloneContext {
	return &CloneContext{Strict: strict}
}

// PushAncestor records that old is being cloned into new, so that
// nested AddressRefs can rebind their anchor to the copy.
func (cc *CloneContext) PushAncestor(old, new *Wrapper) {
	cc.ancestors = append(cc.ancestors, ancestorPair{Old: old, New: new})
}

// PopAncestor undoes the most recent PushAncestor.
func (cc *CloneContext) PopAncestor() {
	cc.ancestors = cc.ancestors[:len(cc.ancestors)-1]
}

// Mapped returns the clone of old, if old is one of the wrappers
// currently being cloned (i.e. a reference that pointed inside the
// region under clone).
func (cc *CloneContext) Mapped(old *Wrapper) (*Wrapper, bool) {
	for i := len(cc.ancestors) - 1; i >= 0; i-- {
		if cc.ancestors[i].Old == old {
			return cc.ancestors[i].New, true
		}
	}
	return nil, false
}

// ReportError applies the context's error policy: in strict mode it
// returns the error to abort the clone; in lenient mode it records the
// error against CurrentPath and returns nil so cloning continues. A nil
// err is returned as nil in either mode.
func (cc *CloneContext) ReportError(err error) error {
	if err == nil || cc.Strict {
		return err
	}
	cc.Errors = append(cc.Errors, CloneError{Path: cc.CurrentPath, Message: err.Error()})
	return nil
}

// WithPath returns a copy of cc scoped to a deeper current_path, for
// recursing into a child key during Wrapper.Clone.
func (cc *CloneContext) WithPath(path string) *CloneContext {
	return &CloneContext{ancestors: cc.ancestors, CurrentPath: path, Strict: cc.Strict, Errors: cc.Errors}
}
