package node

import "strings"

// interpSpot is one splice point in a StringInterp: the byte offset
// into Base at which Node's rendered value is inserted.
type interpSpot struct {
	Position int
	Node     Node
}

// StringInterp renders a base string with one or more node values
// spliced in at recorded positions (spec's StringInterp variant). It is
// built by the parser when a raw value mixes literal text with one or
// more `${...}` expressions (spec §4.2, parse_raw "mixed literal +
// expressions" case).
type StringInterp struct {
	Base  string
	Spots []interpSpot
}

// NewStringInterp builds a StringInterp over base with no spots yet;
// callers (the parser) add spots with AddSpot as they scan.
func NewStringInterp(base string) *StringInterp {
	return &StringInterp{Base: base}
}

// AddSpot records that node's rendered value splices in at byte offset
// position of Base.
func (s *StringInterp) AddSpot(position int, n Node) {
	s.Spots = append(s.Spots, interpSpot{Position: position, Node: n})
}

func (s *StringInterp) Get(ctx *EvalContext) (string, error) {
	var b strings.Builder
	last := 0
	for _, spot := range s.Spots {
		b.WriteString(s.Base[last:spot.Position])
		v, err := spot.Node.Get(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		last = spot.Position
	}
	b.WriteString(s.Base[last:])
	return b.String(), nil
}

func (s *StringInterp) Clone(cc *CloneContext) (Node, error) {
	spots := make([]interpSpot, 0, len(s.Spots))
	for _, spot := range s.Spots {
		c, err := spot.Node.Clone(cc)
		if err != nil {
			return nil, err
		}
		spots = append(spots, interpSpot{Position: spot.Position, Node: c})
	}
	return &StringInterp{Base: s.Base, Spots: spots}, nil
}

// Optimize collapses a StringInterp with no dynamic spots into a Plain
// string (SPEC_FULL.md supplement 2: a fully-resolved StringInterp with
// zero spots is semantically just its base text). ParseRaw itself never
// builds one; it returns a PlainString when a value has no expressions.
func (s *StringInterp) Optimize() (Node, bool) {
	if len(s.Spots) == 0 {
		return &PlainString{Val: s.Base}, true
	}
	return nil, false
}
