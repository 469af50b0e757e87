package node

import (
	"strconv"
	"strings"
)

// PlainString is a literal string value (spec's Plain variant, T=string).
type PlainString struct{ Val string }

func (p *PlainString) Get(ctx *EvalContext) (string, error) { return p.Val, nil }

func (p *PlainString) GetInt(ctx *EvalContext) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(p.Val), 10, 64)
	if err != nil {
		return 0, Wrap(TypeMismatch, err, "plain string %q is not an integer", p.Val)
	}
	return v, nil
}

func (p *PlainString) GetFloat(ctx *EvalContext) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Val), 64)
	if err != nil {
		return 0, Wrap(TypeMismatch, err, "plain string %q is not a float", p.Val)
	}
	return v, nil
}

func (p *PlainString) Clone(cc *CloneContext) (Node, error) {
	return &PlainString{Val: p.Val}, nil
}

// PlainInt is a literal integer value (spec's Plain variant, T=int).
type PlainInt struct{ Val int64 }

func (p *PlainInt) Get(ctx *EvalContext) (string, error) {
	return strconv.FormatInt(p.Val, 10), nil
}
func (p *PlainInt) GetInt(ctx *EvalContext) (int64, error)     { return p.Val, nil }
func (p *PlainInt) GetFloat(ctx *EvalContext) (float64, error) { return float64(p.Val), nil }
func (p *PlainInt) Clone(cc *CloneContext) (Node, error)       { return &PlainInt{Val: p.Val}, nil }

// PlainFloat is a literal float value (spec's Plain variant, T=float).
type PlainFloat struct{ Val float64 }

func (p *PlainFloat) Get(ctx *EvalContext) (string, error) {
	return strconv.FormatFloat(p.Val, 'g', -1, 64), nil
}
func (p *PlainFloat) GetFloat(ctx *EvalContext) (float64, error) { return p.Val, nil }
func (p *PlainFloat) GetInt(ctx *EvalContext) (int64, error)     { return int64(p.Val), nil }
func (p *PlainFloat) Clone(cc *CloneContext) (Node, error)       { return &PlainFloat{Val: p.Val}, nil }

// SettablePlainString is a mutable string literal: the spec's
// SettablePlain variant, and what the `var` operator installs when no
// type keyword is given (spec's Var row is realized by this family —
// see SPEC_FULL.md supplement 1 on `var`'s quote-trimming).
type SettablePlainString struct{ Val string }

func (p *SettablePlainString) Get(ctx *EvalContext) (string, error) { return p.Val, nil }
func (p *SettablePlainString) Set(ctx *EvalContext, value string) error {
	p.Val = value
	return nil
}
func (p *SettablePlainString) Clone(cc *CloneContext) (Node, error) {
	return &SettablePlainString{Val: p.Val}, nil
}

// SettablePlainInt is a mutable integer literal (`var x int 5`).
type SettablePlainInt struct{ Val int64 }

func (p *SettablePlainInt) Get(ctx *EvalContext) (string, error) {
	return strconv.FormatInt(p.Val, 10), nil
}
func (p *SettablePlainInt) GetInt(ctx *EvalContext) (int64, error) { return p.Val, nil }
func (p *SettablePlainInt) Set(ctx *EvalContext, value string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return Wrap(TypeMismatch, err, "not an integer: %q", value)
	}
	p.Val = v
	return nil
}
func (p *SettablePlainInt) Clone(cc *CloneContext) (Node, error) {
	return &SettablePlainInt{Val: p.Val}, nil
}

// SettablePlainFloat is a mutable float literal (`var x float 5.0`).
type SettablePlainFloat struct{ Val float64 }

func (p *SettablePlainFloat) Get(ctx *EvalContext) (string, error) {
	return strconv.FormatFloat(p.Val, 'g', -1, 64), nil
}
func (p *SettablePlainFloat) GetFloat(ctx *EvalContext) (float64, error) { return p.Val, nil }
func (p *SettablePlainFloat) Set(ctx *EvalContext, value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Wrap(TypeMismatch, err, "not a float: %q", value)
	}
	p.Val = v
	return nil
}
func (p *SettablePlainFloat) Clone(cc *CloneContext) (Node, error) {
	return &SettablePlainFloat{Val: p.Val}, nil
}
