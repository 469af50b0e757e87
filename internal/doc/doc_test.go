package doc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quandangv/lini/internal/node"
)

type fakeEnv struct{ vars map[string]string }

func (f *fakeEnv) Get(name string) (string, bool) { v, ok := f.vars[name]; return v, ok }
func (f *fakeEnv) Set(name, value string) bool    { f.vars[name] = value; return true }

type fakeProc struct{ responses map[string]string }

func (f *fakeProc) Run(command string) (string, bool) { v, ok := f.responses[command]; return v, ok }

type fakeFS struct{ files map[string]string }

func (f *fakeFS) ReadFile(path string) (string, bool) { v, ok := f.files[path]; return v, ok }
func (f *fakeFS) WriteFile(path, contents string) bool {
	f.files[path] = contents
	return true
}

type fakeColourValue struct{ hex string }

func (f fakeColourValue) Format() string { return f.hex }

type fakeColour struct{}

func (fakeColour) ParseSpec(spec, mode string) (node.Colour, error) {
	return fakeColourValue{hex: spec}, nil
}
func (fakeColour) Modify(modspec string, c node.Colour) (node.Colour, error) {
	return fakeColourValue{hex: c.Format() + modspec}, nil
}
func (fakeColour) Blend(a, b node.Colour, t float64) node.Colour { return a }

func testCtx() *node.EvalContext {
	return node.NewEvalContext(context.Background(),
		&fakeEnv{vars: map[string]string{}},
		&fakeProc{responses: map[string]string{}},
		&fakeFS{files: map[string]string{}},
		fakeColour{},
		func() int64 { return 0 })
}

func TestLoadFlatKeysNoSection(t *testing.T) {
	src := "a = 1\nb = hello\n"
	document, errs := Load(strings.NewReader(src), "")
	require.True(t, errs.Empty(), errs.Error())

	v, ok := document.Root.GetChild(testCtx(), "a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestLoadSectionedKeys(t *testing.T) {
	src := "[server]\nhost = localhost\nport = 8080\n"
	document, errs := Load(strings.NewReader(src), "")
	require.True(t, errs.Empty(), errs.Error())

	v, ok := document.Root.GetChild(testCtx(), "server.host")
	require.True(t, ok)
	assert.Equal(t, "localhost", v)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n# another\n\na = 1\n"
	document, errs := Load(strings.NewReader(src), "")
	require.True(t, errs.Empty(), errs.Error())
	v, ok := document.Root.GetChild(testCtx(), "a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestLoadReportsUnparsedLine(t *testing.T) {
	src := "not a key value line\n"
	_, errs := Load(strings.NewReader(src), "")
	require.False(t, errs.Empty())
}

func TestLoadReportsDuplicateKey(t *testing.T) {
	src := "a = 1\na = 2\n"
	document, errs := Load(strings.NewReader(src), "")
	require.False(t, errs.Empty())
	v, ok := document.Root.GetChild(testCtx(), "a")
	require.True(t, ok)
	assert.Equal(t, "1", v, "the first value must survive the rejected duplicate")
}

func TestLoadReportsInvalidKeyName(t *testing.T) {
	src := "ba$d = 1\n"
	_, errs := Load(strings.NewReader(src), "")
	require.False(t, errs.Empty())
}

func TestLoadExpressionAcrossKeys(t *testing.T) {
	src := "name = world\ngreeting = hello ${name}!\n"
	document, errs := Load(strings.NewReader(src), "")
	require.True(t, errs.Empty(), errs.Error())
	v, ok := document.Root.GetChild(testCtx(), "greeting")
	require.True(t, ok)
	assert.Equal(t, "hello world!", v)
}

func TestWriteToRoundTripsPlainValues(t *testing.T) {
	src := "a = hello\n\n[server]\nhost = localhost\n"
	document, errs := Load(strings.NewReader(src), "")
	require.True(t, errs.Empty(), errs.Error())

	var out strings.Builder
	require.NoError(t, document.WriteTo(&out, testCtx()))
	assert.Equal(t, "a = hello\n\n[server]\nhost = localhost\n", out.String())
}

func TestFormatValueQuotesLeadingTrailingSpace(t *testing.T) {
	assert.Equal(t, `" padded "`, formatValue(" padded "))
}

func TestFormatValueEscapesLiteralDollarBrace(t *testing.T) {
	assert.Equal(t, `text \${literal}`, formatValue("text ${literal}"))
}

func TestFormatValueEmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", formatValue(""))
}

func TestFormatValuePlainUnchanged(t *testing.T) {
	assert.Equal(t, "plain", formatValue("plain"))
}

func TestValidateNameRejectsExcludedChars(t *testing.T) {
	require.Error(t, validateName("a.b"))
	require.Error(t, validateName("a b"))
	require.NoError(t, validateName("ab_c-1"))
}
