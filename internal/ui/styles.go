package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	l1Style        = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	l2Style        = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	separatorStyle = pterm.NewStyle(pterm.FgGreen)
)

// PrintL1Title heads a whole screen, such as the reviewed month.
func PrintL1Title(format string, a ...any) {
	l1Style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

// PrintL2Title heads a block within a screen.
func PrintL2Title(format string, a ...any) {
	l2Style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

func PrintSeparator() {
	separatorStyle.Println("----------------------------------------")
}
