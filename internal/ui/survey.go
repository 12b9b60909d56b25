package ui

import "github.com/AlecAivazis/survey/v2"

func iconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// Confirm asks a yes/no question on the plain survey prompt, which stays
// usable when the terminal cannot host a full-screen form.
func Confirm(message string, defaultValue bool) (bool, error) {
	ok := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &ok, iconOption()); err != nil {
		return false, err
	}
	return ok, nil
}
