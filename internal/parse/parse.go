// Package parse turns a document's raw key values into node.Node trees
// (spec §4.2 "parse_raw" / "parse_escaped"), and is the only place that
// builds node.Wrapper.EnsurePath's companion install step for a
// document-loaded key. See original_source/include/node/parse.hxx and
// src/parse.cpp for the operator grammar this mirrors.
package parse

import (
	"strings"

	"github.com/quandangv/lini/internal/node"
)

// AddRaw installs raw at path in root, parsing it into a node tree and
// linking the key's own Wrapper into the tree before parsing (so
// ParseContext.Current is already anchored, letting "clone" merge into
// it and "."-prefixed addresses resolve against it even before any of
// the key's own children are declared).
//
// A key already carrying a value here means the same path was added
// twice — original_source's wrapper::add(path, value) throws "Duplicate
// key" for exactly this (src/node/wrapper.cpp:77-80); spec §6/§7 expect
// it reported on the errorlist rather than silently overwritten.
func AddRaw(root *node.Wrapper, path, raw string) (*node.Slot, error) {
	parent, slot, err := root.EnsurePath(path)
	if err != nil {
		return nil, err
	}
	leaf, _ := slot.Value.(*node.Wrapper)
	if leaf.Value != nil {
		return nil, node.Errf(node.DuplicateKey, "duplicate key %q", path)
	}
	rawCopy := raw
	pc := &node.ParseContext{Root: root, Current: leaf, Parent: parent, CurrentPath: path, Raw: &rawCopy}
	value, err := ParseRaw(pc, rawCopy)
	if err != nil {
		return nil, err
	}
	// parseClone may return pc.Current (== leaf) itself when it merged
	// into it; leaf is already linked into the tree at slot, so there's
	// nothing further to install. Otherwise value is the key's own,
	// distinct payload node.
	if wrp, ok := value.(*node.Wrapper); !ok || wrp != leaf {
		leaf.Value = value
	}
	return slot, nil
}

// trimQuotes strips one matching pair of surrounding quotes ('"' or
// '\'') from s, if both ends carry the same quote character. Mismatched
// or absent quoting is left untouched (spec §4.2's quoted-fallback test
// scenario relies on exactly this: a fallback opening with `"` and
// closing with `'` is rendered literally, quotes and all).
func trimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' || first == '\'') && first == last {
		return s[1 : len(s)-1]
	}
	return s
}

// foundExpr is one `${...}` occurrence discovered while scanning a raw
// value, recorded with the byte offset (in the literal-accumulation
// output) it will be spliced in at.
type foundExpr struct {
	position int
	node     node.Node
}

// ParseRaw implements parse_raw: it trims one layer of surrounding
// quotes, then scans left to right resolving backslash escapes and
// `${...}` expressions in a single pass. This merges what the original
// does as two separate passes (an escape-substitution pass, then a
// find_enclosed search over the result) into one scan: because `\$` is
// consumed as a unit and the scan never rewinds, a literal `\${` can
// never be mistaken for the start of an expression, which is the
// property the two-pass version relies on `--it` to get right.
func ParseRaw(pc *node.ParseContext, value string) (node.Node, error) {
	value = trimQuotes(value)

	var base strings.Builder
	var exprs []foundExpr

	i, n := 0, len(value)
	for i < n {
		c := value[i]
		if c == '\\' {
			if i+1 >= n {
				return nil, node.Errf(node.ParseError, "dangling escape at end of value")
			}
			switch value[i+1] {
			case 'n':
				base.WriteByte('\n')
			case 't':
				base.WriteByte('\t')
			case '\\':
				base.WriteByte('\\')
			case '$':
				base.WriteByte('$')
			default:
				return nil, node.Errf(node.ParseError, "unknown escape sequence: \\%c", value[i+1])
			}
			i += 2
			continue
		}
		if c == '$' && i+1 < n && value[i+1] == '{' {
			start, end, ok := findBalanced(value, i)
			if !ok {
				return nil, node.Errf(node.ParseError, "unterminated expression: %s", value[i:])
			}
			body := value[start+2 : end-1]
			exprNode, err := parseEscaped(pc, body)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, foundExpr{position: base.Len(), node: exprNode})
			i = end
			continue
		}
		base.WriteByte(c)
		i++
	}

	if len(exprs) == 0 {
		return &node.PlainString{Val: base.String()}, nil
	}
	if len(exprs) == 1 && exprs[0].position == 0 && base.Len() == 0 {
		return exprs[0].node, nil
	}

	interp := node.NewStringInterp(base.String())
	for _, e := range exprs {
		interp.AddSpot(e.position, e.node)
	}
	return interp, nil
}

// findBalanced locates the `${...}` enclosure starting at value[start:],
// honoring nested `{...}` so that `${a ${b} c}` resolves to the outer pair.
func findBalanced(value string, start int) (int, int, bool) {
	depth := 1
	i := start + 2
	for i < len(value) {
		switch value[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth == 0 {
				return start, i, true
			}
		default:
			i++
		}
	}
	return 0, 0, false
}
