// Package vos is the boundary between the interpreter and the operating
// system it runs on.
//
// Everything the interpreter does outside its own memory (reading and
// writing files, changing directory, starting programs) goes through a VOS so
// the same code can drive the host or an in-memory double in tests.
package vos

import (
	"github.com/spf13/afero"
)

// VFS is the filesystem layer of the virtual OS.
type VFS = afero.Fs

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VIO
	VFS

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory. On failure the working
	// directory is left unchanged.
	Chdir(dir string) error

	// IsTerminal reports whether standard output is attached to a terminal.
	IsTerminal() bool

	// StartProcess starts the program at path with argv, argv[0] being the
	// name the program sees for itself. It does not search any path.
	StartProcess(path string, argv []string, attr *ProcAttr) (Proc, error)
}
