package node

// Env reads (and, if Settable is used, writes) a named environment
// variable through the EvalContext's Environment collaborator.
type Env struct {
	Name Node
}

func (e *Env) Get(ctx *EvalContext) (string, error) {
	name, err := e.Name.Get(ctx)
	if err != nil {
		return "", err
	}
	v, ok := ctx.Env.Get(name)
	if !ok {
		return "", Errf(ExternalFailure, "environment variable not set: %s", name)
	}
	return v, nil
}

func (e *Env) Set(ctx *EvalContext, value string) error {
	name, err := e.Name.Get(ctx)
	if err != nil {
		return err
	}
	if !ctx.Env.Set(name, value) {
		return Errf(ExternalFailure, "failed to set environment variable: %s", name)
	}
	return nil
}

func (e *Env) Clone(cc *CloneContext) (Node, error) {
	n, err := e.Name.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Env{Name: n}, nil
}

// Cmd captures the stdout of a shell invocation once: the first Get
// runs the command and memoizes the result (and any error) for every
// subsequent Get. Poll below is the re-run-every-time counterpart.
type Cmd struct {
	Command Node

	ran       bool
	cached    string
	cachedErr error
}

func (c *Cmd) Get(ctx *EvalContext) (string, error) {
	if c.ran {
		return c.cached, c.cachedErr
	}
	c.ran = true
	cmdStr, err := c.Command.Get(ctx)
	if err != nil {
		c.cachedErr = err
		return "", err
	}
	out, ok := ctx.Proc.Run(cmdStr)
	if !ok {
		c.cachedErr = Errf(ExternalFailure, "command failed: %s", cmdStr)
		return "", c.cachedErr
	}
	c.cached = out
	return out, nil
}

func (c *Cmd) Clone(cc *CloneContext) (Node, error) {
	cmdNode, err := c.Command.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Cmd{Command: cmdNode}, nil
}

// Poll behaves like Cmd but re-runs the command on every Get.
type Poll struct {
	Command Node
}

func (p *Poll) Get(ctx *EvalContext) (string, error) {
	cmdStr, err := p.Command.Get(ctx)
	if err != nil {
		return "", err
	}
	out, ok := ctx.Proc.Run(cmdStr)
	if !ok {
		return "", Errf(ExternalFailure, "command failed: %s", cmdStr)
	}
	return out, nil
}

func (p *Poll) Clone(cc *CloneContext) (Node, error) {
	cmdNode, err := p.Command.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &Poll{Command: cmdNode}, nil
}

// File reads (and, if Settable is used, writes) a file's contents
// through the EvalContext's Filesystem collaborator.
type File struct {
	Path Node
}

func (f *File) Get(ctx *EvalContext) (string, error) {
	path, err := f.Path.Get(ctx)
	if err != nil {
		return "", err
	}
	content, ok := ctx.FS.ReadFile(path)
	if !ok {
		return "", Errf(ExternalFailure, "failed to read file: %s", path)
	}
	return content, nil
}

func (f *File) Set(ctx *EvalContext, value string) error {
	path, err := f.Path.Get(ctx)
	if err != nil {
		return err
	}
	if !ctx.FS.WriteFile(path, value) {
		return Errf(ExternalFailure, "failed to write file: %s", path)
	}
	return nil
}

func (f *File) Clone(cc *CloneContext) (Node, error) {
	p, err := f.Path.Clone(cc)
	if err != nil {
		return nil, err
	}
	return &File{Path: p}, nil
}
