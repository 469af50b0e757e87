package node

import "fmt"

// ErrKind enumerates the engine's closed set of error categories (spec §7).
type ErrKind int

const (
	// ParseError covers malformed expressions, unknown operators, wrong
	// arity, unknown escapes, a zero from_range in map, a bad colour mode.
	ParseError ErrKind = iota
	// KeyNotFound means an AddressRef could not resolve and had no fallback.
	KeyNotFound
	// DuplicateKey means Wrapper.Add collided with an existing non-wrapper key.
	DuplicateKey
	// MergeConflict means a clone/merge collided on a non-wrapper key.
	MergeConflict
	// Cycle means recursive evaluation re-entered a slot already being evaluated.
	Cycle
	// TypeMismatch means a typed accessor (GetInt/GetFloat) was invoked on a
	// node that cannot produce that type.
	TypeMismatch
	// ExternalFailure means an Env/Cmd/File collaborator call failed.
	ExternalFailure
	// IndexOutOfRange means an ArrCache was indexed past its sequence.
	IndexOutOfRange
)

func (k ErrKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case KeyNotFound:
		return "KeyNotFound"
	case DuplicateKey:
		return "DuplicateKey"
	case MergeConflict:
		return "MergeConflict"
	case Cycle:
		return "Cycle"
	case TypeMismatch:
		return "TypeMismatch"
	case ExternalFailure:
		return "ExternalFailure"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	default:
		return "Unknown"
	}
}

// Error is the single error type the engine returns; Kind selects the
// category and Cause (if any) is the underlying collaborator error.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, node.Sentinel(node.KeyNotFound)) by comparing kinds, mirroring
// the teacher's sentinel-error idiom (e.g. graph.ErrNotFound) adapted to a
// single typed enum instead of one var per kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Errf builds a new *Error of the given kind, formatting Message like fmt.Sprintf.
func Errf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a new *Error of the given kind around an underlying cause.
func Wrap(kind ErrKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel returns a zero-message *Error of the given kind, for use with
// errors.Is when no extra context is needed (e.g. `node.Sentinel(node.Cycle)`).
func Sentinel(kind ErrKind) *Error {
	return &Error{Kind: kind}
}
