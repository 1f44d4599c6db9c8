package shell

import (
	"errors"
	"io"

	"github.com/josephlewis42/wish/core/logger"
	"github.com/josephlewis42/wish/core/vos"
)

// runExternal starts the first search path candidate that launches and waits
// for it to finish.
func (s *Shell) runExternal(stdio vos.VIO, cmd Command) {
	candidates := s.SearchPath.Candidates(cmd.Args[0])

	wd, err := s.VirtualOS.Getwd()
	if err != nil {
		s.Log.Printf("getwd: %v", err)
		wd = ""
	}

	for _, candidate := range candidates {
		proc, err := s.VirtualOS.StartProcess(candidate, cmd.Args, &vos.ProcAttr{
			Dir:   wd,
			Env:   s.VirtualOS.Environ(),
			Files: stdio,
		})

		switch {
		case errors.Is(err, vos.ErrProcessCreation):
			s.Log.Printf("%s: %v", candidate, err)
			io.WriteString(stdio.Stderr(), MsgError)
			return

		case err != nil:
			s.Log.Printf("%s: %v", candidate, err)
			s.record(&logger.LaunchFailure{Path: candidate, Error: err.Error()})
			continue
		}

		exitCode, err := proc.Wait()
		if err != nil {
			s.Log.Printf("wait %s: %v", candidate, err)
		}

		s.record(&logger.Command{
			Argv:     cmd.Args,
			Path:     candidate,
			ExitCode: exitCode,
			Redirect: cmd.Redirect,
		})
		return
	}

	s.record(&logger.CommandNotFound{Argv: cmd.Args, Tried: candidates})
	io.WriteString(stdio.Stderr(), MsgProcess)
}
