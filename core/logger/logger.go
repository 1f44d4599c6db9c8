// Package logger records interpreter events as newline delimited JSON.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// LogEntry is one line of the event log. Exactly one of the event fields is
// set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart    *SessionStart    `json:"session_start,omitempty"`
	Command         *Command         `json:"command,omitempty"`
	LaunchFailure   *LaunchFailure   `json:"launch_failure,omitempty"`
	CommandNotFound *CommandNotFound `json:"command_not_found,omitempty"`
	Fatal           *Fatal           `json:"fatal,omitempty"`
}

// LogType is implemented by every event payload.
type LogType interface {
	setOn(le *LogEntry)
}

// SessionStart is logged once when the read-eval loop starts.
type SessionStart struct {
	Mode       string   `json:"mode"`
	BatchFile  string   `json:"batch_file,omitempty"`
	SearchPath []string `json:"search_path"`
}

// Command is logged after a builtin or external command completes.
type Command struct {
	Argv     []string `json:"argv"`
	Builtin  bool     `json:"builtin,omitempty"`
	Path     string   `json:"path,omitempty"`
	ExitCode int      `json:"exit_code"`
	Redirect string   `json:"redirect,omitempty"`
}

// LaunchFailure is logged for every search path candidate that didn't start.
type LaunchFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// CommandNotFound is logged when no candidate could be started.
type CommandNotFound struct {
	Argv  []string `json:"argv"`
	Tried []string `json:"tried"`
}

// Fatal is logged just before the interpreter exits on an error.
type Fatal struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (e *SessionStart) setOn(le *LogEntry)    { le.SessionStart = e }
func (e *Command) setOn(le *LogEntry)         { le.Command = e }
func (e *LaunchFailure) setOn(le *LogEntry)   { le.LaunchFailure = e }
func (e *CommandNotFound) setOn(le *LogEntry) { le.CommandNotFound = e }
func (e *Fatal) setOn(le *LogEntry)           { le.Fatal = e }

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger stamps events and hands them to a LogRecorder.
type Logger struct {
	Record LogRecorder

	// Now is the time source, time.Now if nil.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger creates a Logger that drops every event.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(*LogEntry) error { return nil },
	}
}

func (l *Logger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Logger) recordLogType(sessionID string, event LogType) error {
	le := &LogEntry{}
	le.TimestampMicros = l.now().UnixNano() / int64(time.Microsecond)
	le.SessionID = sessionID
	event.setOn(le)

	return l.Record(le)
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession(sessionID string) *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: sessionID}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Record logs the event.
func (l *SessionLogger) Record(event LogType) error {
	return l.recordLogType(l.sessionID, event)
}

// ReadJSONLinesLog parses a newline delimited JSON log, calling handler for
// each entry in order.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry LogEntry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}

		handler(&entry)
	}
	return nil
}
