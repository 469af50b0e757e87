// Package tstring provides a non-owning view over a backing string,
// used by node.Wrapper to trim and split dotted key paths without
// copying on every trim or cut.
package tstring

import "strings"

// String is a view [begin, end) into a backing string. Operations that
// would mutate a C-string in place instead rebuild the backing string
// and shift the view's bounds accordingly — Go strings are immutable,
// so "in-place" here means "owned by this view's parser pass, not
// shared with any other view taken before the edit".
type String struct {
	backing *string
	begin   int
	end     int
}

// Of returns a view over the whole of *backing.
func Of(backing *string) String {
	return String{backing: backing, begin: 0, end: len(*backing)}
}

// Raw returns the string denoted by the view.
func (s String) Raw() string {
	return (*s.backing)[s.begin:s.end]
}

func (s String) Len() int    { return s.end - s.begin }
func (s String) Empty() bool { return s.begin >= s.end }

// Equal reports whether the view's text equals lit.
func (s String) Equal(lit string) bool {
	return s.Raw() == lit
}

// Front returns the first byte of the view and whether the view is non-empty.
func (s String) Front() (byte, bool) {
	if s.Empty() {
		return 0, false
	}
	return (*s.backing)[s.begin], true
}

// Back returns the last byte of the view and whether the view is non-empty.
func (s String) Back() (byte, bool) {
	if s.Empty() {
		return 0, false
	}
	return (*s.backing)[s.end-1], true
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

// LTrim trims leading whitespace from the view.
func (s String) LTrim() String {
	for s.begin < s.end && isSpace((*s.backing)[s.begin]) {
		s.begin++
	}
	return s
}

// RTrim trims trailing whitespace from the view.
func (s String) RTrim() String {
	for s.end > s.begin && isSpace((*s.backing)[s.end-1]) {
		s.end--
	}
	return s
}

// Trim trims whitespace from both ends of the view.
func (s String) Trim() String {
	return s.LTrim().RTrim()
}

// EraseFront drops the first n bytes from the view.
func (s String) EraseFront(n int) String {
	s.begin += n
	if s.begin > s.end {
		s.begin = s.end
	}
	return s
}

// EraseBack drops the last n bytes from the view.
func (s String) EraseBack(n int) String {
	s.end -= n
	if s.end < s.begin {
		s.end = s.begin
	}
	return s
}

// Interval returns the subview [a, b) using indices local to this view.
func (s String) Interval(a, b int) String {
	return String{backing: s.backing, begin: s.begin + a, end: s.begin + b}
}

// CutFront splits the view on the first occurrence of ch. When found,
// it returns the prefix before ch, advances the receiver past ch, and
// reports found=true. When ch does not occur, the returned prefix is
// the entire original view, the receiver becomes empty, and found is
// false — mirroring the "untouched" case in the original lini tstring.
func (s *String) CutFront(ch byte) (prefix String, found bool) {
	raw := (*s.backing)[s.begin:s.end]
	idx := strings.IndexByte(raw, ch)
	if idx < 0 {
		prefix = *s
		s.begin = s.end
		return prefix, false
	}
	prefix = String{backing: s.backing, begin: s.begin, end: s.begin + idx}
	s.begin = s.begin + idx + 1
	return prefix, true
}

// CutFrontBack reports whether the view starts with lhs and ends with
// rhs (non-overlapping) and, if so, shrinks the view to exclude both.
func (s *String) CutFrontBack(lhs, rhs string) bool {
	if s.Len() < len(lhs)+len(rhs) {
		return false
	}
	raw := (*s.backing)[s.begin:s.end]
	if !strings.HasPrefix(raw, lhs) || !strings.HasSuffix(raw, rhs) {
		return false
	}
	s.begin += len(lhs)
	s.end -= len(rhs)
	return true
}

// Replace rewrites the backing string, substituting the n bytes
// starting at the view-relative offset pos with repl, then shifts the
// view's own bounds to account for the length delta. Any other view
// sharing the same backing pointer is invalidated.
func (s *String) Replace(pos, n int, repl string) {
	abs := s.begin + pos
	*s.backing = (*s.backing)[:abs] + repl + (*s.backing)[abs+n:]
	delta := len(repl) - n
	s.end += delta
}

// FindEnclosed locates the first top-level occurrence of open...close
// in s, honoring nested openNest...close balancing inside it (so that
// "${a ${b} c}" resolves to the outer pair, not the inner one). It
// returns the byte range [start, end) of the whole enclosure,
// including the delimiters, and ok=false if no balanced enclosure is
// found.
func FindEnclosed(s, open, openNest, close string) (start, end int, ok bool) {
	idx := strings.Index(s, open)
	if idx < 0 {
		return 0, 0, false
	}
	depth := 1
	i := idx + len(open)
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], close):
			depth--
			i += len(close)
			if depth == 0 {
				return idx, i, true
			}
		case strings.HasPrefix(s[i:], openNest):
			depth++
			i += len(openNest)
		default:
			i++
		}
	}
	return 0, 0, false
}
