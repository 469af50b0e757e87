package node

import "strconv"

// Clock returns (steady_elapsed / tick) mod loop as an integer (spec's
// Clock variant). Its zero point is the instant of its first Get, not
// construction time, matching the original's mutable zero_point field
// which is only meaningful once the clock starts being read.
type Clock struct {
	TickMs int64
	Loop   int64

	zero int64
	set  bool
}

func (c *Clock) GetInt(ctx *EvalContext) (int64, error) {
	if c.TickMs <= 0 {
		return 0, Errf(ParseError, "clock tick duration must be positive")
	}
	now := ctx.Now()
	if !c.set {
		c.zero = now
		c.set = true
	}
	elapsed := now - c.zero
	ticks := elapsed / c.TickMs
	if c.Loop > 0 {
		ticks %= c.Loop
	}
	return ticks, nil
}

func (c *Clock) Get(ctx *EvalContext) (string, error) {
	v, err := c.GetInt(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

func (c *Clock) Clone(cc *CloneContext) (Node, error) {
	return &Clock{TickMs: c.TickMs, Loop: c.Loop}, nil
}
