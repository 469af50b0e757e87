package node

import (
	"strconv"
	"strings"
)

// AsInt evaluates n as an integer: via its own IntGetter if it has one,
// otherwise by parsing its rendered string (spec §3: "a typed request
// on a string node fails unless the string parses as that type").
func AsInt(ctx *EvalContext, n Node) (int64, error) {
	if ig, ok := n.(IntGetter); ok {
		return ig.GetInt(ctx)
	}
	s, err := n.Get(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, Wrap(TypeMismatch, err, "not an integer: %q", s)
	}
	return v, nil
}

// AsFloat is the float analogue of AsInt.
func AsFloat(ctx *EvalContext, n Node) (float64, error) {
	if fg, ok := n.(FloatGetter); ok {
		return fg.GetFloat(ctx)
	}
	s, err := n.Get(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, Wrap(TypeMismatch, err, "not a float: %q", s)
	}
	return v, nil
}
