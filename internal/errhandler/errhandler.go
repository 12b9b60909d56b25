package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	if lunchmoney.IsUnauthorized(err) {
		pterm.Error.Println("Lunch Money rejected the access token. Update api.token in your config or set LUNCHBOX_API_TOKEN.")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
