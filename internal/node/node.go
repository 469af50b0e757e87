// Package node implements the lini configuration engine's node model:
// the typed node hierarchy, the Wrapper tree that holds keys by dotted
// path, the evaluation protocol with cycle and fallback handling, and
// the cloning/merging protocol. See spec.md §3-4 for the data model
// this package implements.
package node

import "context"

// Node is the abstract unit of evaluation. Every node variant implements it.
type Node interface {
	// Get renders the node's string value. It may fail (ExternalFailure,
	// KeyNotFound, Cycle, ...).
	Get(ctx *EvalContext) (string, error)

	// Clone produces a structural copy of the node within cc, remapping
	// any address references that point inside the region being cloned.
	Clone(cc *CloneContext) (Node, error)
}

// Settable is an optional capability: a node that can accept writes.
// Nodes that don't implement it are implicitly read-only.
type Settable interface {
	Set(ctx *EvalContext, value string) error
}

// IntGetter is an optional capability for nodes with a native integer
// representation (Clock, int Var, ...). A string request on such a node
// formats the integer; GetInt on a node that doesn't implement IntGetter
// falls back to parsing its Get() result as an integer, failing with
// TypeMismatch if that parse fails.
type IntGetter interface {
	GetInt(ctx *EvalContext) (int64, error)
}

// FloatGetter is the float analogue of IntGetter (Map, float Var, ...).
type FloatGetter interface {
	GetFloat(ctx *EvalContext) (float64, error)
}

// Optimizer is an optional capability: a node that can report a
// semantically-identical replacement to install in its own slot, used by
// the document-load optimisation pass (spec §4.5, SPEC_FULL supplement 2).
// Most node kinds do not implement it — the original's conservative
// default is "no replacement available".
type Optimizer interface {
	Optimize() (Node, bool)
}

// EvalContext threads the collaborators and the in-flight cycle-detection
// set through one top-level Get call (spec §5: no locks, a per-call
// visitation set). Callers build one with NewEvalContext and pass it to
// Wrapper.GetChild and friends; nodes that recurse into children pass the
// same EvalContext along.
type EvalContext struct {
	Go context.Context

	Env     Environment
	Proc    Subprocess
	FS      Filesystem
	Colour  ColourProcessor
	Now     func() (steady int64) // monotonic milliseconds, for Cache/Clock/Smooth

	visiting *visitSet
}

// NewEvalContext builds an EvalContext wired to the given collaborators.
func NewEvalContext(ctx context.Context, env Environment, proc Subprocess, fs Filesystem, colour ColourProcessor, now func() int64) *EvalContext {
	return &EvalContext{
		Go: ctx, Env: env, Proc: proc, FS: fs, Colour: colour, Now: now,
		visiting: newVisitSet(),
	}
}

// Environment is the external environment-variable collaborator (spec §6).
type Environment interface {
	Get(name string) (string, bool)
	Set(name, value string) bool
}

// Subprocess is the external command-execution collaborator (spec §6).
type Subprocess interface {
	Run(command string) (stdout string, ok bool)
}

// Filesystem is the external file-read/write collaborator (spec §6).
type Filesystem interface {
	ReadFile(path string) (string, bool)
	WriteFile(path, contents string) bool
}

// Colour is the external colour-space collaborator's value type (spec §6).
type Colour interface {
	// Format renders the colour as "#RRGGBB".
	Format() string
}

// ColourProcessor is the external colour-space collaborator (spec §6).
type ColourProcessor interface {
	ParseSpec(spec string, mode string) (Colour, error)
	Modify(modspec string, c Colour) (Colour, error)
	// Blend interpolates between two colours at position t in [0, 1],
	// used by Gradient. Implementations may extrapolate for t outside
	// [0, 1].
	Blend(a, b Colour, t float64) Colour
}
