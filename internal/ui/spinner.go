package ui

import "github.com/pterm/pterm"

// WithSpinner shows a spinner with text while fn runs.
func WithSpinner(text string, fn func() error) error {
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return fn()
	}

	if err := fn(); err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Stop()
	return nil
}
