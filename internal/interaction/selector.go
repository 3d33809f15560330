package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value).
		Run()
}

var runInputsPrompt = func(inputs []Input) error {
	fields := make([]huh.Field, len(inputs))
	for i, in := range inputs {
		fields[i] = newInputField(in)
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func newInputField(in Input) *huh.Input {
	field := huh.NewInput().
		Title(in.Title).
		Value(in.Value).
		Validate(validateRequired(in))
	if in.Default != "" {
		field.Placeholder(in.Default)
	}
	return field
}

// HuhPrompter implements Prompter with the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	answer := defaultYes
	if err := runConfirmPrompt(title, &answer); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return answer, nil
}

// Inputs renders all inputs as one form. Fields start pre-filled with their
// defaults and an emptied optional field falls back to its default.
func (HuhPrompter) Inputs(inputs ...Input) error {
	for _, in := range inputs {
		*in.Value = in.Default
	}
	if err := runInputsPrompt(inputs); err != nil {
		return fmt.Errorf("prompt input: %w", err)
	}
	applyDefaults(inputs)
	return checkRequired(inputs)
}
