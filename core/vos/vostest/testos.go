// Package vostest provides a deterministic in-memory VOS for tests.
package vostest

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sync"
	"syscall"

	"github.com/josephlewis42/wish/core/vos"
	"github.com/spf13/afero"
)

// Program is a fake executable. It gets the argument vector it was started
// with and its standard streams, and returns an exit code.
type Program func(argv []string, stdio vos.VIO) int

// TestOS is a VOS backed by an in-memory filesystem. Programs are only
// runnable if they were installed with InstallProgram.
type TestOS struct {
	*vos.MapEnv
	vos.VIO
	vos.VFS

	// ForkErr, if set, makes every StartProcess fail as though the system
	// couldn't create a process.
	ForkErr error

	// Terminal is returned by IsTerminal.
	Terminal bool

	mu       sync.Mutex
	dir      string
	programs map[string]Program
	attempts []string
	started  []Started
}

// Started records a successful StartProcess call.
type Started struct {
	Path string
	Argv []string
	Dir  string
	Env  []string
}

var _ vos.VOS = (*TestOS)(nil)

// New creates a TestOS with "/" as the working directory and the given
// streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *TestOS {
	return &TestOS{
		MapEnv:   vos.NewMapEnv(),
		VIO:      vos.NewVIOAdapter(stdin, stdout, stderr),
		VFS:      afero.NewMemMapFs(),
		dir:      "/",
		programs: make(map[string]Program),
	}
}

// InstallProgram writes an executable file at name and registers prog to run
// when it's started.
func (t *TestOS) InstallProgram(name string, prog Program) error {
	if err := t.WriteFile(name, fmt.Sprintf("#!fake %s\n", name), 0755); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.programs[name] = prog
	return nil
}

// WriteFile creates the file and any missing parent directories.
func (t *TestOS) WriteFile(name, contents string, perm fs.FileMode) error {
	if err := t.MkdirAll(path.Dir(name), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(t.VFS, name, []byte(contents), perm); err != nil {
		return err
	}
	return t.Chmod(name, perm)
}

// ReadFile returns the contents of the file, or an empty string if it can't
// be read.
func (t *TestOS) ReadFile(name string) string {
	contents, err := afero.ReadFile(t.VFS, name)
	if err != nil {
		return ""
	}
	return string(contents)
}

// Attempts returns every path StartProcess was called with, in order.
func (t *TestOS) Attempts() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.attempts...)
}

// Started returns the processes that were started, in order.
func (t *TestOS) Started() []Started {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Started(nil), t.started...)
}

// Getwd implements vos.VOS.Getwd.
func (t *TestOS) Getwd() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dir, nil
}

// Chdir implements vos.VOS.Chdir.
func (t *TestOS) Chdir(dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !path.IsAbs(dir) {
		dir = path.Join(t.dir, dir)
	}
	dir = path.Clean(dir)

	stat, err := t.Stat(dir)
	switch {
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	case !stat.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	default:
		t.dir = dir
		return nil
	}
}

// IsTerminal implements vos.VOS.IsTerminal.
func (t *TestOS) IsTerminal() bool {
	return t.Terminal
}

// StartProcess implements vos.VOS.StartProcess.
func (t *TestOS) StartProcess(name string, argv []string, attr *vos.ProcAttr) (vos.Proc, error) {
	if attr == nil {
		attr = &vos.ProcAttr{}
	}

	t.mu.Lock()
	t.attempts = append(t.attempts, name)
	forkErr := t.ForkErr
	dir := t.dir
	t.mu.Unlock()

	if forkErr != nil {
		return nil, fmt.Errorf("%w: %v", vos.ErrProcessCreation, forkErr)
	}

	if attr.Dir != "" {
		dir = attr.Dir
	}
	resolved := name
	if !path.IsAbs(resolved) {
		resolved = path.Join(dir, resolved)
	}

	stat, err := t.Stat(resolved)
	switch {
	case err != nil:
		return nil, &fs.PathError{Op: "fork/exec", Path: name, Err: syscall.ENOENT}
	case stat.IsDir() || stat.Mode()&0111 == 0:
		return nil, &fs.PathError{Op: "fork/exec", Path: name, Err: syscall.EACCES}
	}

	t.mu.Lock()
	prog, ok := t.programs[resolved]
	if ok {
		t.started = append(t.started, Started{
			Path: name,
			Argv: append([]string(nil), argv...),
			Dir:  dir,
			Env:  append([]string(nil), attr.Env...),
		})
	}
	t.mu.Unlock()

	if !ok {
		return nil, &fs.PathError{Op: "fork/exec", Path: name, Err: syscall.ENOEXEC}
	}

	files := attr.Files
	if files == nil {
		files = t.VIO
	}

	return &testProc{run: func() int { return prog(argv, files) }}, nil
}

type testProc struct {
	run func() int
}

// Wait runs the program to completion.
func (p *testProc) Wait() (int, error) {
	return p.run(), nil
}

// Echo is a Program that writes its arguments separated by spaces.
func Echo(argv []string, stdio vos.VIO) int {
	buf := &bytes.Buffer{}
	for i, arg := range argv[1:] {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(arg)
	}
	buf.WriteByte('\n')

	stdio.Stdout().Write(buf.Bytes())
	return 0
}

// Fail is a Program that writes its name to stderr and exits 1.
func Fail(argv []string, stdio vos.VIO) int {
	fmt.Fprintf(stdio.Stderr(), "%s: failed\n", argv[0])
	return 1
}
