package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/josephlewis42/wish/core/config"
	"github.com/josephlewis42/wish/core/logger"
	"github.com/josephlewis42/wish/core/shell"
	"github.com/josephlewis42/wish/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	modeInteractive = "interactive"
	modeBatch       = "batch"
)

// errUsage is returned for invocations that should print the usage message.
var errUsage = errors.New("usage")

type rootOptions struct {
	cfgPath   string
	eventLog  string
	colorMode string
	debug     bool
}

// NewRootCmd creates the wish command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wish [batch-file]",
		Short: "A small command interpreter",
		Long: `wish reads commands from the terminal, or from batch-file if one is given, and
runs them one at a time. The builtins are exit, cd and path; anything else is
looked up in the search path set with path. A trailing "> file" appends the
command's output and errors to file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          opts.run,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := rootCmd.Flags()
	flags.StringVar(&opts.cfgPath, "config", "", "config file or directory, built-in defaults if empty")
	flags.StringVar(&opts.eventLog, "event-log", "", "append a JSON lines event log to this file")
	flags.StringVar(&opts.colorMode, "color", "", "prompt color (auto|always|never), overrides the config")
	flags.BoolVar(&opts.debug, "debug", false, "write diagnostics to stderr")

	return rootCmd
}

// Execute runs the wish command and exits the process with its status.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	os.Exit(exitStatus(rootCmd.ErrOrStderr(), err))
}

// exitStatus writes the message for err and returns the process exit code.
func exitStatus(w io.Writer, err error) int {
	var fatal *shell.FatalError

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		io.WriteString(w, shell.MsgUsage)
	case errors.As(err, &fatal):
		io.WriteString(w, fatal.Message)
	default:
		io.WriteString(w, shell.MsgError)
	}
	return 1
}

func (o *rootOptions) loadConfig(fs afero.Fs) (*config.Configuration, error) {
	cfg := config.Default()
	if o.cfgPath != "" {
		loaded, err := config.Load(fs, o.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if o.colorMode != "" {
		cfg.Color = o.colorMode
	}
	if o.eventLog != "" {
		cfg.EventLog = o.eventLog
	}

	return cfg, cfg.Validate()
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	diag := log.New(ioutil.Discard, "[wish] ", 0)
	if o.debug {
		diag.SetOutput(cmd.ErrOrStderr())
	}

	host := vos.NewHostOS(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := o.loadConfig(host)
	if err != nil {
		diag.Printf("config: %v", err)
		return &shell.FatalError{Message: shell.MsgError, Err: err}
	}

	mode := modeInteractive
	batchFile := ""
	var input shell.LineReader
	if len(args) == 1 {
		mode, batchFile = modeBatch, args[0]

		fd, err := host.Open(batchFile)
		if err != nil {
			diag.Printf("batch file: %v", err)
			return &shell.FatalError{Message: shell.MsgCannotOpen, Err: err}
		}
		defer fd.Close()
		input = shell.NewBatchReader(fd)
	} else {
		prompt := shell.FormatPrompt(cfg.Prompt, cfg.Color, host.IsTerminal())
		input = shell.NewPromptReader(host.Stdin(), host.Stdout(), prompt)
	}

	sh := shell.NewShell(host, input, cfg)
	sh.Log = diag

	if cfg.EventLog != "" {
		logFd, err := vos.OpenAppend(host, cfg.EventLog)
		if err != nil {
			diag.Printf("event log: %v", err)
			return &shell.FatalError{Message: shell.MsgCannotOpen, Err: err}
		}
		defer logFd.Close()

		sh.Events = logger.NewJsonLinesLogRecorder(logFd).NewSession(newSessionID())
	}

	if err := sh.Events.Record(&logger.SessionStart{
		Mode:       mode,
		BatchFile:  batchFile,
		SearchPath: sh.SearchPath,
	}); err != nil {
		diag.Printf("event log: %v", err)
	}

	return sh.Run()
}

func newSessionID() string {
	return fmt.Sprintf("%016x", rand.New(rand.NewSource(time.Now().UnixNano())).Uint64())
}
