package cmd

import (
	"os"

	"github.com/hance08/lunchbox/internal/app"
	"github.com/hance08/lunchbox/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	committed, reverted, err := r.app.Service.History.Summary()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.app.DBPath,
		DBExists:        dbExists,
		APIBaseURL:      cfg.API.BaseURL,
		TokenConfigured: cfg.HasToken(),
		DefaultCurrency: cfg.Defaults.Currency,
		CacheTTL:        cfg.Cache.TTL,
		Strict:          cfg.Review.Strict,
		AppDataDir:      appDataDirOrUnknown(),
		Committed:       committed,
		Reverted:        reverted,
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
