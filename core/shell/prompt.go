package shell

import (
	"github.com/fatih/color"
	"github.com/josephlewis42/wish/core/config"
)

// ShouldColor decides whether to color output for the config color mode.
func ShouldColor(mode string, isTerminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return isTerminal
	default:
		return false
	}
}

// FormatPrompt returns the prompt to print, colored if ShouldColor says so.
func FormatPrompt(prompt, mode string, isTerminal bool) string {
	if !ShouldColor(mode, isTerminal) || prompt == "" {
		return prompt
	}

	// The package wide switch follows the process's stdout, which may differ
	// from where the prompt goes.
	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(prompt)
}
