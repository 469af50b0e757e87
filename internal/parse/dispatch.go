package parse

import (
	"strconv"
	"strings"

	"github.com/quandangv/lini/internal/node"
)

// parseEscaped implements parse_escaped: it splits off a trailing `?
// fallback` tail, tokenizes what remains (respecting quotes), dispatches
// on the operator keyword and token count (spec §4.2's operator table),
// and — if a fallback was present — wraps the result in a
// node.FallbackWrapper regardless of which operator produced it.
func parseEscaped(pc *node.ParseContext, body string) (node.Node, error) {
	head, fallbackRaw, hasFallback := splitFallback(body)
	trimmed := strings.TrimSpace(head)
	tokens := tokenize(trimmed)
	// cmd and poll take everything after the keyword, spaces included,
	// as their single command argument.
	if len(tokens) > 2 && (tokens[0] == "cmd" || tokens[0] == "poll") {
		tokens = []string{tokens[0], strings.TrimSpace(trimmed[len(tokens[0]):])}
	}

	result, err := dispatch(pc, tokens)
	if err != nil {
		return nil, err
	}
	if !hasFallback {
		return result, nil
	}
	fallbackNode, err := ParseRaw(pc, strings.TrimSpace(fallbackRaw))
	if err != nil {
		return nil, err
	}
	return &node.FallbackWrapper{Primary: result, Fallback: fallbackNode}, nil
}

func parentPath(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// arg parses token as a raw value, recursively — used for every
// operator argument that can itself be a literal, an address, or a
// nested `${...}` expression.
func arg(pc *node.ParseContext, token string) (node.Node, error) {
	return ParseRaw(pc, token)
}

func dispatch(pc *node.ParseContext, tokens []string) (node.Node, error) {
	if len(tokens) == 0 {
		return &node.PlainString{Val: pc.CurrentPath}, nil
	}
	first := tokens[0]

	switch {
	case first == ".." && len(tokens) == 1:
		return &node.UpRef{ParentPath: parentPath(pc.CurrentPath)}, nil

	case (first == "dep" || first == "sibling") && len(tokens) == 2:
		return &node.AddressRef{Anchor: pc.Parent, Path: tokens[1]}, nil

	case (first == "rel" || first == "child") && len(tokens) == 2:
		return &node.AddressRef{Anchor: pc.Current, Path: tokens[1]}, nil

	case first == "cmd" && len(tokens) == 2:
		n, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		return &node.Cmd{Command: n}, nil

	case first == "poll" && len(tokens) == 2:
		n, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		return &node.Poll{Command: n}, nil

	case first == "file" && len(tokens) == 2:
		n, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		return &node.File{Path: n}, nil

	case first == "env" && len(tokens) == 2:
		n, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		return &node.Env{Name: n}, nil

	case first == "save" && len(tokens) == 3:
		v, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		t, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.Save{Value: v, Target: t}, nil

	case first == "color" && len(tokens) >= 2 && len(tokens) <= 4:
		return parseColour(pc, tokens[1:])

	case first == "gradient" && len(tokens) == 3:
		stops, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		pos, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.Gradient{Stops: stops, Position: pos}, nil

	case first == "clock" && (len(tokens) == 2 || len(tokens) == 3):
		return parseClock(tokens[1:])

	case first == "cache" && len(tokens) == 3:
		dur, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		src, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.Cache{Duration: dur, Source: src}, nil

	case first == "refcache" && len(tokens) == 3:
		trig, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		src, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.RefCache{Trigger: trig, Source: src}, nil

	case first == "arrcache" && len(tokens) == 3:
		calc, err := arg(pc, tokens[1])
		if err != nil {
			return nil, err
		}
		src, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.ArrCache{Calculator: calc, Source: src}, nil

	case first == "map" && (len(tokens) == 4 || len(tokens) == 6):
		return parseMap(pc, tokens[1:])

	case first == "smooth" && len(tokens) == 3:
		factor, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return nil, node.Wrap(node.ParseError, err, "smooth: bad factor %q", tokens[1])
		}
		target, err := arg(pc, tokens[2])
		if err != nil {
			return nil, err
		}
		return &node.Smooth{Factor: factor, Target: target}, nil

	case first == "var" && (len(tokens) == 2 || len(tokens) == 3):
		return parseVar(tokens[1:])

	case first == "clone" && len(tokens) >= 2:
		return parseClone(pc, tokens[1:])

	case len(tokens) == 1 && strings.HasPrefix(first, "."):
		return &node.AddressRef{Anchor: pc.Current, Path: first[1:]}, nil

	case len(tokens) == 1:
		return &node.AddressRef{Anchor: pc.Root, Path: first}, nil
	}

	return nil, node.Errf(node.ParseError, "unrecognised expression: %q", strings.Join(tokens, " "))
}

func parseClock(tokens []string) (node.Node, error) {
	tick, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return nil, node.Wrap(node.ParseError, err, "clock: bad tick duration %q", tokens[0])
	}
	var loop int64
	if len(tokens) == 2 {
		loop, err = strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return nil, node.Wrap(node.ParseError, err, "clock: bad loop %q", tokens[1])
		}
	}
	return &node.Clock{TickMs: tick, Loop: loop}, nil
}

func parseRange(tok string) (min, rng float64, err error) {
	parts := strings.SplitN(tok, ":", 2)
	if len(parts) != 2 {
		return 0, 0, node.Errf(node.ParseError, "map: expected min:max, got %q", tok)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, node.Wrap(node.ParseError, err, "map: bad range start %q", parts[0])
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, node.Wrap(node.ParseError, err, "map: bad range end %q", parts[1])
	}
	return lo, hi - lo, nil
}

// parseMap accepts either the colon-range form (`5:10 0:2 value`, 3
// tokens) or the fully-spelled form (`5 10 0 2 value`, 5 tokens).
func parseMap(pc *node.ParseContext, rest []string) (node.Node, error) {
	var fromMin, fromRange, toMin, toRange float64
	var valueTok string
	var err error

	switch len(rest) {
	case 3:
		fromMin, fromRange, err = parseRange(rest[0])
		if err != nil {
			return nil, err
		}
		toMin, toRange, err = parseRange(rest[1])
		if err != nil {
			return nil, err
		}
		valueTok = rest[2]
	case 5:
		nums := make([]float64, 4)
		for i := 0; i < 4; i++ {
			nums[i], err = strconv.ParseFloat(rest[i], 64)
			if err != nil {
				return nil, node.Wrap(node.ParseError, err, "map: bad number %q", rest[i])
			}
		}
		fromMin, fromRange = nums[0], nums[1]-nums[0]
		toMin, toRange = nums[2], nums[3]-nums[2]
		valueTok = rest[4]
	default:
		return nil, node.Errf(node.ParseError, "map: wrong argument count")
	}
	if fromRange == 0 {
		return nil, node.Errf(node.ParseError, "map: zero-width source range")
	}
	value, err := arg(pc, valueTok)
	if err != nil {
		return nil, err
	}
	return &node.MapNode{Value: value, FromMin: fromMin, FromRange: fromRange, ToMin: toMin, ToRange: toRange}, nil
}

// parseVar builds the settable literal the `var` operator installs:
// `var value` for a string literal, or `var int|float value` for a
// typed one (spec's SettablePlain/Var variants).
func parseVar(rest []string) (node.Node, error) {
	if len(rest) == 1 {
		return &node.SettablePlainString{Val: trimQuotes(rest[0])}, nil
	}
	switch rest[0] {
	case "int":
		v, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return nil, node.Wrap(node.ParseError, err, "var: bad int %q", rest[1])
		}
		return &node.SettablePlainInt{Val: v}, nil
	case "float":
		v, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return nil, node.Wrap(node.ParseError, err, "var: bad float %q", rest[1])
		}
		return &node.SettablePlainFloat{Val: v}, nil
	default:
		return nil, node.Errf(node.ParseError, "var: unknown type keyword %q", rest[0])
	}
}

// parseColour handles `color spec`, `color mode spec`, and `color mode
// "modifier" spec`. Whether the first argument is a mode name is
// decided purely by how many tokens follow it, not by checking it
// against ColourProcessor's recognised names — that would need a live
// call the parser doesn't have yet. A bad mode name still surfaces, as
// an ExternalFailure from ParseSpec at evaluation time.
func parseColour(pc *node.ParseContext, rest []string) (node.Node, error) {
	switch len(rest) {
	case 1:
		spec, err := arg(pc, rest[0])
		if err != nil {
			return nil, err
		}
		return &node.Colour{Spec: spec}, nil
	case 2:
		spec, err := arg(pc, rest[1])
		if err != nil {
			return nil, err
		}
		return &node.Colour{Mode: rest[0], Spec: spec}, nil
	case 3:
		spec, err := arg(pc, rest[2])
		if err != nil {
			return nil, err
		}
		modifier, err := arg(pc, trimQuotes(rest[1]))
		if err != nil {
			return nil, err
		}
		return &node.Colour{Mode: rest[0], Modifier: modifier, Spec: spec}, nil
	}
	return nil, node.Errf(node.ParseError, "color: wrong argument count")
}

// parseClone implements `clone a b c ...` (spec §4.6). Each argument
// names a key resolved against the *containing* wrapper of the key
// being defined (pc.Parent) — so `merge = ${clone src1 src2}` looks up
// sibling keys of `merge`, not children of it. An argument that is a
// Wrapper with children (node.Wrapper.HasChildren) merges into
// pc.Current (the key's own, already-linked wrapper); every other
// argument must be the final one and becomes pc.Current's own value
// (spec §8.5 / original_source/include/node/parse.hxx:163 — any
// non-final non-Wrapper argument is a ParseError, not a silent no-op).
// If nothing ever merges (every argument turned out to be a plain
// node, not a Wrapper-with-children), pc.Current collapses away in
// favor of that last clone directly, so a single-argument deep clone
// of a plain node behaves exactly like cloning it in place.
func parseClone(pc *node.ParseContext, args []string) (node.Node, error) {
	cc := node.NewCloneContext(true)
	var lastValue node.Node
	mergedAny := false

	for i, name := range args {
		last := i == len(args)-1
		slot := pc.Parent.GetChildPtr(name)
		if slot == nil || slot.Value == nil {
			return nil, node.Errf(node.KeyNotFound, "clone: can't find node to clone: %s", name)
		}
		if src, ok := slot.Value.(*node.Wrapper); ok && src.HasChildren() {
			// Merge clones src's children itself; cloning src up front too
			// would just discard the extra copy.
			if err := pc.Current.Merge(src, cc.WithPath(name)); err != nil {
				return nil, err
			}
			mergedAny = true
			if last && src.Value != nil {
				v, err := src.Value.Clone(cc.WithPath(name))
				if err != nil {
					return nil, err
				}
				lastValue = v
			}
			continue
		}
		if !last {
			return nil, node.Errf(node.ParseError, "clone: can't merge non-wrapper node: %s", name)
		}
		// A childless Wrapper is just the document loader's scalar-key
		// shell (node.Wrapper.HasChildren) — clone its own Value, not
		// the empty shell itself.
		source := slot.Value
		if wrp, ok := source.(*node.Wrapper); ok {
			source = wrp.Value
			if source == nil {
				return nil, node.Errf(node.KeyNotFound, "clone: can't find node to clone: %s", name)
			}
		}
		copied, err := source.Clone(cc.WithPath(name))
		if err != nil {
			return nil, err
		}
		lastValue = copied
	}

	if mergedAny {
		if lastValue != nil {
			pc.Current.Value = lastValue
		}
		return pc.Current, nil
	}
	return lastValue, nil
}
