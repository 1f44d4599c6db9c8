package shell

import "strings"

// Messages written to standard error. They're fixed so scripts and tests can
// match on them, details go to the diagnostic log.
const (
	MsgError      = "An error has occurred\n"
	MsgCannotOpen = "Cannot open file\n"
	MsgProcess    = "Process could not be executed\n"
	MsgUsage      = "usage: ./wish [batch-file]\n"
	MsgCdUsage    = "usage: cd 'path'\n"
	MsgChdir      = "Couldn't change directory\n"

	// Unused, the Go runtime aborts on allocation failure.
	MsgAlloc = "Error allocating memory\n"
)

// FatalError ends the read-eval loop. The interpreter prints Message and exits
// with status 1.
type FatalError struct {
	Message string
	Err     error
}

func (e *FatalError) Error() string {
	msg := strings.TrimSuffix(e.Message, "\n")
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
