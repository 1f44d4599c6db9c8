package vos

import (
	"errors"
	"path/filepath"
)

// ErrProcessCreation is wrapped by StartProcess errors when the system could
// not create a new process at all, as opposed to the program failing to
// launch.
var ErrProcessCreation = errors.New("cannot create process")

// ProcAttr holds the attributes that will be applied to a new process
// started by StartProcess.
type ProcAttr struct {
	// Dir is the working directory of the new process. If empty, the caller's
	// working directory is used.
	Dir string

	// Env gives the environment variables for the new process in the form
	// returned by Environ. If nil, the process gets an empty environment.
	Env []string

	// Files specifies the open files inherited by the new process.
	Files VIO
}

// Proc is a started process.
type Proc interface {
	// Wait blocks until the process exits or is killed by a signal. A
	// stopped process is still waited on. The exit code is -1 if the process
	// was killed by a signal.
	Wait() (exitCode int, err error)
}

// ResolvePath makes name absolute relative to the working directory of v.
func ResolvePath(v VOS, name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	wd, err := v.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, name), nil
}
