package shell

import (
	"io"

	"github.com/josephlewis42/wish/core/vos"
)

// AllBuiltins holds the commands run inside the interpreter, keyed by name.
var AllBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command run inside the interpreter. It writes to stdio,
// which carries the command's redirection, and returns an exit code.
type ShellBuiltin interface {
	Main(s *Shell, stdio vos.VIO, args []string) int
}

type ShellBuiltinFunc func(s *Shell, stdio vos.VIO, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, stdio vos.VIO, args []string) int {
	return f(s, stdio, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Exit stops the read-eval loop. Arguments are ignored.
func Exit(s *Shell, stdio vos.VIO, args []string) int {
	s.Quit = true
	return 0
}

// Cd changes the working directory to its only argument.
func Cd(s *Shell, stdio vos.VIO, args []string) int {
	if len(args) != 2 {
		io.WriteString(stdio.Stderr(), MsgCdUsage)
		return 1
	}

	if err := s.VirtualOS.Chdir(args[1]); err != nil {
		s.Log.Printf("cd: %v", err)
		io.WriteString(stdio.Stderr(), MsgChdir)
		return 1
	}
	return 0
}

// Path replaces the search path with its arguments. With no arguments
// nothing is searched.
func Path(s *Shell, stdio vos.VIO, args []string) int {
	s.SetSearchPath(args[1:])
	return 0
}

func init() {
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["path"] = ShellBuiltinFunc(Path)
}
