package shell

import (
	"bufio"
	"io"
)

// LineReader is the source of command lines for the read-eval loop.
type LineReader interface {
	// ReadLine returns the next line including its newline, if any. It
	// returns io.EOF once the input is exhausted.
	ReadLine() (string, error)
}

// NewBatchReader reads lines from r without prompting.
func NewBatchReader(r io.Reader) LineReader {
	return &bufLineReader{r: bufio.NewReader(r)}
}

// NewPromptReader writes prompt to w before reading each line from r.
func NewPromptReader(r io.Reader, w io.Writer, prompt string) LineReader {
	return &bufLineReader{r: bufio.NewReader(r), w: w, prompt: prompt}
}

type bufLineReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

func (l *bufLineReader) ReadLine() (string, error) {
	if l.w != nil {
		if _, err := io.WriteString(l.w, l.prompt); err != nil {
			return "", err
		}
	}

	line, err := l.r.ReadString('\n')
	if err == io.EOF && line != "" {
		// Run the last line even if it isn't terminated, the next read will
		// report EOF.
		return line, nil
	}
	return line, err
}
