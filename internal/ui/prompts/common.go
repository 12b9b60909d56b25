package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput asks for free text prefilled with initial. Erasing the field
// yields an empty answer.
func PromptInput(message string, initial string, validator func(string) error) (string, error) {
	value := initial

	input := huh.NewInput().
		Title(message).
		Value(&value)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
