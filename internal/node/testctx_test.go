package node

import "context"

type fakeEnv struct{ vars map[string]string }

func newFakeEnv() *fakeEnv { return &fakeEnv{vars: map[string]string{}} }

func (f *fakeEnv) Get(name string) (string, bool) { v, ok := f.vars[name]; return v, ok }
func (f *fakeEnv) Set(name, value string) bool    { f.vars[name] = value; return true }

type fakeProc struct {
	responses map[string]string
}

func (f *fakeProc) Run(command string) (string, bool) {
	v, ok := f.responses[command]
	return v, ok
}

type fakeFS struct{ files map[string]string }

func newFakeFS() *fakeFS { return &fakeFS{files: map[string]string{}} }

func (f *fakeFS) ReadFile(path string) (string, bool) { v, ok := f.files[path]; return v, ok }
func (f *fakeFS) WriteFile(path, contents string) bool {
	f.files[path] = contents
	return true
}

type fakeColour struct{}

type fakeColourValue struct{ hex string }

func (f fakeColourValue) Format() string { return f.hex }

func (fakeColour) ParseSpec(spec string, mode string) (Colour, error) {
	return fakeColourValue{hex: spec}, nil
}
func (fakeColour) Modify(modspec string, c Colour) (Colour, error) {
	return fakeColourValue{hex: c.Format() + modspec}, nil
}
func (fakeColour) Blend(a, b Colour, t float64) Colour {
	if t < 0.5 {
		return a
	}
	return b
}

// newTestCtx builds an EvalContext wired to in-memory fakes, with a
// manually advanceable clock for Cache/Clock/Smooth tests.
func newTestCtx() (*EvalContext, *fakeClock) {
	clk := &fakeClock{}
	ctx := NewEvalContext(context.Background(), newFakeEnv(), &fakeProc{responses: map[string]string{}}, newFakeFS(), fakeColour{}, clk.now)
	return ctx, clk
}

type fakeClock struct{ t int64 }

func (c *fakeClock) now() int64 { return c.t }
func (c *fakeClock) advance(ms int64) { c.t += ms }
