package shell

import (
	"testing"

	"github.com/josephlewis42/wish/core/config"
	"github.com/stretchr/testify/assert"
)

func TestShouldColor(t *testing.T) {
	cases := []struct {
		mode       string
		isTerminal bool
		want       bool
	}{
		{config.ColorNever, true, false},
		{config.ColorNever, false, false},
		{config.ColorAlways, false, true},
		{config.ColorAuto, true, true},
		{config.ColorAuto, false, false},
		{"", true, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ShouldColor(tc.mode, tc.isTerminal), "mode %q terminal %v", tc.mode, tc.isTerminal)
	}
}

func TestFormatPrompt(t *testing.T) {
	assert.Equal(t, "wish> ", FormatPrompt("wish> ", config.ColorNever, true))
	assert.Equal(t, "", FormatPrompt("", config.ColorAlways, true))
	assert.Equal(t, "\x1b[32;1mwish> \x1b[0m", FormatPrompt("wish> ", config.ColorAlways, false))
}
