package doclog

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnfSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetEnabled(false)

	Warnf("line %d: %s", 3, "bad key")
	assert.Empty(t, buf.String())
}

func TestWarnfWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetEnabled(true)
	defer SetEnabled(false)

	Warnf("line %d: %s", 3, "bad key")
	assert.Contains(t, buf.String(), "warn: line 3: bad key")
}

func TestInfofWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetEnabled(true)
	defer SetEnabled(false)

	Infof("snapshot %d taken", 7)
	assert.Contains(t, buf.String(), "info: snapshot 7 taken")
}
