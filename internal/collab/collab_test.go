package collab

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGetAndSet(t *testing.T) {
	const key = "LINI_COLLAB_TEST_VAR"
	defer os.Unsetenv(key)

	env := Env{}
	require.True(t, env.Set(key, "value"))
	v, ok := env.Get(key)
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestEnvGetMissing(t *testing.T) {
	env := Env{}
	_, ok := env.Get("LINI_COLLAB_TEST_DEFINITELY_UNSET")
	assert.False(t, ok)
}

func TestShellRunCapturesStdout(t *testing.T) {
	s := Shell{}
	out, ok := s.Run("echo hello")
	require.True(t, ok)
	assert.Equal(t, "hello", out)
}

func TestShellRunFailureReportsNotOK(t *testing.T) {
	s := Shell{}
	_, ok := s.Run("exit 1")
	assert.False(t, ok)
}

func TestMemFilesystemWriteThenRead(t *testing.T) {
	fs := NewMemFilesystem()
	require.True(t, fs.WriteFile("a.txt", "contents"))
	v, ok := fs.ReadFile("a.txt")
	require.True(t, ok)
	assert.Equal(t, "contents", v)
}

func TestMemFilesystemReadMissing(t *testing.T) {
	fs := NewMemFilesystem()
	_, ok := fs.ReadFile("missing.txt")
	assert.False(t, ok)
}
