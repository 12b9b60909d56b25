package views

import (
	"errors"

	"github.com/hance08/lunchbox/internal/service"
	"github.com/pterm/pterm"
)

// RenderClearResults prints one line per id and returns how many were
// cleared. Remote failures were already reported when they were rolled
// back, so only rejections are printed for failed ids.
func RenderClearResults(results []service.ConfirmResult) (cleared int) {
	for _, r := range results {
		var confirmErr *service.ConfirmError
		switch {
		case r.Err == nil:
			cleared++
			pterm.Success.Printf("Transaction %d cleared\n", r.ID)
		case errors.As(r.Err, &confirmErr):
		default:
			pterm.Warning.Printf("Transaction %d skipped: %v\n", r.ID, r.Err)
		}
	}
	return cleared
}
