package shell

import (
	"errors"
	"strings"
)

// A line is processed in three steps:
//
//  1. It's split into tokens on whitespace. There are no quotes, escapes or
//     comments, every run of non-separator characters is one token.
//  2. The first ">" token ends the command. The token after it names the file
//     that receives the command's output and errors, anything further is
//     dropped.
//  3. The remaining tokens are the argument vector, the first being the
//     command name.

// RedirectOp is the token that starts an output redirection.
const RedirectOp = ">"

// separators are the characters tokens are split on.
const separators = " \t\r\n\a\v\f"

// ErrMissingRedirectTarget is returned by ParseLine for a trailing ">".
var ErrMissingRedirectTarget = errors.New("missing redirection target")

// Command is a parsed input line.
type Command struct {
	// Args is the argument vector, empty for a blank line.
	Args []string

	// Redirect is the file stdout and stderr go to, empty if the line had no
	// redirection.
	Redirect string
}

// Tokenize splits line into tokens.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// ParseLine tokenizes line and extracts its redirection.
func ParseLine(line string) (Command, error) {
	tokens := Tokenize(line)

	for i, tok := range tokens {
		if tok != RedirectOp {
			continue
		}

		cmd := Command{Args: tokens[:i]}
		if i+1 >= len(tokens) {
			return cmd, ErrMissingRedirectTarget
		}
		cmd.Redirect = tokens[i+1]
		return cmd, nil
	}

	return Command{Args: tokens}, nil
}
