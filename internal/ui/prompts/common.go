package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text input with an optional placeholder default
// and validator.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	if selected == "" && len(options) > 0 {
		selected = options[0]
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	selectField := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected)

	err := selectField.Run()
	return selected, err
}
