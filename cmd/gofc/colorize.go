package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI sequences adapted from the teacher's modules/diferenco/color
// package, trimmed to the three roles this CLI actually colors.
const (
	ansiReset = "\033[m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

// colorizer wraps text in an ANSI color when stdout is a terminal, the
// same check pkg/zeta/misc.go performs before emitting color.
type colorizer struct {
	enabled bool
}

func newColorizer(forceOff bool) *colorizer {
	return &colorizer{enabled: !forceOff && isatty.IsTerminal(os.Stdout.Fd())}
}

func (c *colorizer) wrap(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + ansiReset
}

func (c *colorizer) added(text string) string   { return c.wrap(ansiGreen, text) }
func (c *colorizer) removed(text string) string { return c.wrap(ansiRed, text) }
func (c *colorizer) changed(text string) string { return c.wrap(ansiCyan, text) }
