package vos

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// HostOS is a VOS backed by the real operating system.
//
// The environment is a private copy taken at creation, it's handed to child
// processes but never written back to the interpreter's own environment.
type HostOS struct {
	*MapEnv
	VIO
	VFS
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS over the host with the given standard streams.
func NewHostOS(stdin io.Reader, stdout, stderr io.Writer) *HostOS {
	return &HostOS{
		MapEnv: NewMapEnvFromEnvList(os.Environ()),
		VIO:    NewVIOAdapter(stdin, stdout, stderr),
		VFS:    afero.NewOsFs(),
	}
}

// Getwd implements VOS.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VOS.Chdir, it changes the working directory of the whole
// process.
func (h *HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// IsTerminal implements VOS.IsTerminal.
func (h *HostOS) IsTerminal() bool {
	f, ok := h.Stdout().(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StartProcess implements VOS.StartProcess.
func (h *HostOS) StartProcess(path string, argv []string, attr *ProcAttr) (Proc, error) {
	if attr == nil {
		attr = &ProcAttr{}
	}
	if len(argv) == 0 {
		argv = []string{path}
	}

	files := attr.Files
	if files == nil {
		files = h.VIO
	}

	env := attr.Env
	if env == nil {
		env = []string{}
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    env,
		Dir:    attr.Dir,
		Stdin:  files.Stdin(),
		Stdout: files.Stdout(),
		Stderr: files.Stderr(),
	}

	if err := cmd.Start(); err != nil {
		if isProcessCreationErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrProcessCreation, err)
		}
		return nil, err
	}

	return &hostProc{cmd: cmd}, nil
}

// isProcessCreationErr reports whether the kernel refused to create a
// process, rather than refusing to run a particular file.
func isProcessCreationErr(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM)
}

type hostProc struct {
	cmd *exec.Cmd
}

func (p *hostProc) Wait() (int, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case err != nil:
		return -1, err
	default:
		return 0, nil
	}
}
