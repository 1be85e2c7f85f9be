package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// PromptDescription prompts for a description text.
func PromptDescription(message string, defaultValue string) (string, error) {
	desc := defaultValue

	err := huh.NewInput().
		Title(message).
		Value(&desc).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		}).
		Run()

	return desc, err
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

// PromptDate prompts for a date in YYYY-MM-DD format. Pressing enter
// keeps the default.
func PromptDate(message string, defaultDate string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description("Press Enter to keep " + defaultDate).
		Placeholder(defaultDate).
		Value(&date).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := time.Parse(constants.DateFormat, s); err != nil {
				return fmt.Errorf("use YYYY-MM-DD")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptInput prompts for a generic text input with optional default and
// validator.
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

// PromptSelect prompts for a selection from a list of string options.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	if selected == "" && len(options) > 0 {
		selected = options[0]
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
