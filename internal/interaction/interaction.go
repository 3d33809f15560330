// Package interaction collects answers from the user: a default-yes
// confirmation and a single batch of text inputs. HuhPrompter renders
// terminal prompts; DefaultsPrompter answers every question with its default
// for non-interactive runs.
package interaction

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Input is one named text field of a prompt batch.
type Input struct {
	Title    string
	Default  string
	Required bool
	// Value receives the answer.
	Value *string
}

// Prompter asks the user questions.
type Prompter interface {
	Confirm(title string, defaultYes bool) (bool, error)
	Inputs(inputs ...Input) error
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a HuhPrompter when stdin is a terminal and interactive is true,
// and a DefaultsPrompter otherwise.
func New(interactive bool) Prompter {
	if interactive && IsTerminal(os.Stdin) {
		return HuhPrompter{}
	}
	return DefaultsPrompter{}
}

// DefaultsPrompter answers every question with its default.
type DefaultsPrompter struct{}

func (DefaultsPrompter) Confirm(_ string, defaultYes bool) (bool, error) {
	return defaultYes, nil
}

func (DefaultsPrompter) Inputs(inputs ...Input) error {
	for _, in := range inputs {
		*in.Value = in.Default
	}
	return checkRequired(inputs)
}

// applyDefaults fills empty answers with their defaults.
func applyDefaults(inputs []Input) {
	for _, in := range inputs {
		if *in.Value == "" {
			*in.Value = in.Default
		}
	}
}

func checkRequired(inputs []Input) error {
	for _, in := range inputs {
		if err := validateRequired(in)(*in.Value); err != nil {
			return err
		}
	}
	return nil
}

// validateRequired returns a validator rejecting empty values for required inputs.
func validateRequired(in Input) func(string) error {
	return func(s string) error {
		if in.Required && s == "" {
			return fmt.Errorf("%s is required", in.Title)
		}
		return nil
	}
}
