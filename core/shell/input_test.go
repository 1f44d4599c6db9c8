package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func readAll(r LineReader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadLine()
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func TestNewBatchReader(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"empty":           {"", nil},
		"lines":           {"ls\ncd /\n", []string{"ls\n", "cd /\n"}},
		"unterminated":    {"ls\nexit", []string{"ls\n", "exit"}},
		"blank lines":     {"\n\n", []string{"\n", "\n"}},
		"carriage return": {"ls\r\n", []string{"ls\r\n"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			lines, err := readAll(NewBatchReader(strings.NewReader(tc.input)))

			assert.Equal(t, io.EOF, err)
			assert.Equal(t, tc.want, lines)
		})
	}
}

func TestNewPromptReader(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewPromptReader(strings.NewReader("one\ntwo\n"), out, "wish> ")

	lines, err := readAll(r)

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []string{"one\n", "two\n"}, lines)
	assert.Equal(t, "wish> wish> wish> ", out.String())
}
