// Package collab implements the engine's external collaborators (spec
// §6): environment variables, subprocess execution, and file access.
// Subprocess is grounded on the teacher's internal/ingest/git.go
// os/exec.Command usage; Filesystem is grounded on
// internal/nfsmount/graphfs.go's billy.Filesystem adaptation, swapped
// here for go-billy's own concrete osfs/memfs implementations instead
// of a hand-rolled one.
package collab

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/quandangv/lini/internal/node"
)

// Env is the production node.Environment, backed by the process's
// actual environment.
type Env struct{}

func (Env) Get(name string) (string, bool) { return os.LookupEnv(name) }
func (Env) Set(name, value string) bool    { return os.Setenv(name, value) == nil }

// Shell is the production node.Subprocess, running commands through
// the system shell and capturing stdout (spec §6: "Cmd"/"Poll" need
// only stdout, matching the teacher's LoadGitCommits pattern of reading
// cmd.Stdout into a buffer and ignoring stderr on success).
type Shell struct {
	ShellPath string // defaults to "sh" if empty
}

func (s Shell) Run(command string) (string, bool) {
	shell := s.ShellPath
	if shell == "" {
		shell = "sh"
	}
	cmd := exec.Command(shell, "-c", command)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", false
	}
	return strings.TrimRight(out.String(), "\n"), true
}

var _ node.Subprocess = Shell{}
var _ node.Environment = Env{}

// Filesystem adapts a billy.Filesystem to node.Filesystem. NewOSFilesystem
// roots it at a real directory for production use; NewMemFilesystem
// gives tests an in-memory filesystem with the same behavior.
type Filesystem struct {
	fs billy.Filesystem
}

func NewOSFilesystem(root string) *Filesystem {
	return &Filesystem{fs: osfs.New(root)}
}

func NewMemFilesystem() *Filesystem {
	return &Filesystem{fs: memfs.New()}
}

func (f *Filesystem) ReadFile(path string) (string, bool) {
	file, err := f.fs.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		return "", false
	}
	return buf.String(), true
}

func (f *Filesystem) WriteFile(path, contents string) bool {
	file, err := f.fs.Create(path)
	if err != nil {
		return false
	}
	defer file.Close()
	_, err = file.Write([]byte(contents))
	return err == nil
}

var _ node.Filesystem = (*Filesystem)(nil)
