package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/lunchbox/internal/validation"
)

// SetupAnswers is what the first-run wizard collects.
type SetupAnswers struct {
	Token    string
	Currency string
}

func PromptInitSetup(currDefault string) (SetupAnswers, error) {
	answers := SetupAnswers{Currency: currDefault}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to lunchbox! Please paste your Lunch Money access token:").
				Description("Create one under Settings > Developers in Lunch Money.").
				EchoMode(huh.EchoModePassword).
				Value(&answers.Token).
				Validate(validation.ValidateToken),
			huh.NewSelect[string]().
				Title("Default currency for amounts without one:").
				Options(
					huh.NewOption("USD", "USD"),
					huh.NewOption("CAD", "CAD"),
					huh.NewOption("EUR", "EUR"),
					huh.NewOption("GBP", "GBP"),
					huh.NewOption("AUD", "AUD"),
					huh.NewOption("Other", "Other"),
				).
				Value(&answers.Currency),
		),
	).Run()
	if err != nil {
		return SetupAnswers{}, err
	}

	answers.Token = strings.TrimSpace(answers.Token)

	if answers.Currency == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency code is required")
				}
				return validation.ValidateCurrency(s)
			}).
			Run()

		if err != nil {
			return SetupAnswers{}, err
		}

		answers.Currency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return answers, nil
}
