package views

import (
	"time"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	APIBaseURL      string
	TokenConfigured bool
	DefaultCurrency string
	CacheTTL        time.Duration
	Strict          bool
	AppDataDir      string
	Committed       int
	Reverted        int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tokenStatus := pterm.Green("Configured")
	if !data.TokenConfigured {
		tokenStatus = pterm.Red("Missing")
	}

	cache := data.CacheTTL.String()
	if data.CacheTTL <= 0 {
		cache = "Disabled"
	}

	mode := "Lenient"
	if data.Strict {
		mode = "Strict"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"API Base URL", data.APIBaseURL},
		{"Access Token", tokenStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Month Cache", cache},
		{"Validation", mode},
		{"AppData Directory", data.AppDataDir},
		{"Confirmations", pterm.Sprintf("%d cleared, %d rolled back", data.Committed, data.Reverted)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
