// Package ui formats the command's user-facing output.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	Err          io.Writer
	EmojiEnabled bool
}

// New creates a Console writing regular output to out and warnings/errors to errOut.
func New(out, errOut io.Writer) *Console {
	return &Console{Out: out, Err: errOut, EmojiEnabled: true}
}

// Accent highlights a value such as a project name.
func Accent(s string) string {
	return accentStyle.Render(s)
}

// Info prints a plain message.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Step prints a progress line for a workflow step.
func (c *Console) Step(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix("›", "> "), msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix("✅", "[ok] "), successStyle.Render(msg))
}

// Warn prints a warning to the error writer.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Err, "%s%s\n", c.emojiPrefix("⚠️", "[warn] "), warnStyle.Render(msg))
}

// Error prints an error to the error writer.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Err, "%s%s\n", c.emojiPrefix("❌", "[error] "), errorStyle.Render(msg))
}

func (c *Console) emojiPrefix(emoji, fallback string) string {
	if !c.EmojiEnabled {
		return fallback
	}
	return emoji + " "
}
