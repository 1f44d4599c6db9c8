// Package shell implements the wish read-eval loop.
package shell

import (
	"errors"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/josephlewis42/wish/core/config"
	"github.com/josephlewis42/wish/core/logger"
	"github.com/josephlewis42/wish/core/vos"
)

const EnvPath = "PATH"

// Shell holds the state of one interpreter.
type Shell struct {
	VirtualOS vos.VOS
	Input     LineReader

	// SearchPath is where external commands are looked up, changed with the
	// path builtin.
	SearchPath SearchPath

	// ExportPath keeps PATH in the VirtualOS environment equal to
	// SearchPath so started programs inherit it.
	ExportPath bool

	// Events receives a record of every command.
	Events *logger.SessionLogger

	// Log receives diagnostics, including the errors behind the fixed
	// messages written to stderr.
	Log *log.Logger

	// Set to true to quit the shell.
	Quit bool
}

// NewShell creates an interpreter reading from input with the search path
// and export setting from cfg.
func NewShell(virtualOS vos.VOS, input LineReader, cfg *config.Configuration) *Shell {
	s := &Shell{
		VirtualOS:  virtualOS,
		Input:      input,
		ExportPath: cfg.ExportPath,
		Events:     logger.NewNopLogger().NewSession(""),
		Log:        log.New(ioutil.Discard, "", 0),
	}
	s.SetSearchPath(cfg.DefaultPath)

	return s
}

// SetSearchPath replaces the search path with a copy of dirs.
func (s *Shell) SetSearchPath(dirs []string) {
	s.SearchPath = append(SearchPath{}, dirs...)

	if s.ExportPath {
		if err := s.VirtualOS.Setenv(EnvPath, s.SearchPath.String()); err != nil {
			s.Log.Printf("setenv %s: %v", EnvPath, err)
		}
	}
}

// Run reads and executes lines until the input ends, exit is called or a
// fatal error occurs. It returns nil in the first two cases and a
// *FatalError in the last.
func (s *Shell) Run() error {
	for !s.Quit {
		line, err := s.Input.ReadLine()

		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.

		case err != nil:
			return s.fatal(MsgError, err)
		}

		if err := s.RunLine(line); err != nil {
			return err
		}
	}
	return nil
}

// RunLine parses and executes a single line. Only errors that should end the
// interpreter are returned, command failures are written to the command's
// stderr.
func (s *Shell) RunLine(line string) error {
	cmd, err := ParseLine(line)
	if err != nil {
		return s.fatal(MsgCannotOpen, err)
	}

	// The interpreter's own streams are never reassigned, a redirection only
	// applies to the stdio handed to this command.
	var stdio vos.VIO = s.VirtualOS
	if cmd.Redirect != "" {
		target, err := vos.ResolvePath(s.VirtualOS, cmd.Redirect)
		if err != nil {
			return s.fatal(MsgCannotOpen, err)
		}

		fd, err := vos.OpenAppend(s.VirtualOS, target)
		if err != nil {
			return s.fatal(MsgCannotOpen, err)
		}
		defer fd.Close()

		stdio = vos.WithOutput(s.VirtualOS, fd)
	}

	s.execute(stdio, cmd)
	return nil
}

func (s *Shell) execute(stdio vos.VIO, cmd Command) {
	if len(cmd.Args) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[cmd.Args[0]]; ok {
		exitCode := builtin.Main(s, stdio, cmd.Args)
		s.record(&logger.Command{
			Argv:     cmd.Args,
			Builtin:  true,
			ExitCode: exitCode,
			Redirect: cmd.Redirect,
		})
		return
	}

	s.runExternal(stdio, cmd)
}

func (s *Shell) fatal(message string, err error) error {
	s.Log.Printf("fatal: %v", err)
	s.record(&logger.Fatal{Message: strings.TrimSuffix(message, "\n"), Error: err.Error()})
	return &FatalError{Message: message, Err: err}
}

func (s *Shell) record(event logger.LogType) {
	if err := s.Events.Record(event); err != nil {
		s.Log.Printf("recording event: %v", err)
	}
}
