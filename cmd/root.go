package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/lunchbox/cmd/transaction"
	"github.com/hance08/lunchbox/internal/app"
	"github.com/hance08/lunchbox/internal/config"
	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/errhandler"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/hance08/lunchbox/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "lunchbox reviews and clears your Lunch Money transactions",
		Long:          `lunchbox reviews a month of Lunch Money transactions and lets you clear them from the terminal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().ParseErrorsWhitelist.UnknownFlags = true
	_ = rootCmd.PersistentFlags().Parse(os.Args[1:])

	// .env is optional
	_ = godotenv.Load()

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := initSetup(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	application.Service.Confirmer.SetReporter(func(id int64, message string) {
		pterm.Error.Printf("Failed to validate transaction %d: %s\n", id, message)
	})

	rootCmd.AddCommand(transaction.NewTransactionCmd(application.Service))

	rootCmd.AddCommand(NewReviewCmd(application.Service))
	rootCmd.AddCommand(NewHistoryCmd(application.Service))
	rootCmd.AddCommand(NewMonthsCmd())
	rootCmd.AddCommand(NewInfoCmd(application))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errhandler.IsCancelled(err) || errors.Is(err, context.Canceled) {
			pterm.Warning.Println("Operation Cancelled")
			return
		}

		cleanup()
		if lunchmoney.IsUnauthorized(err) {
			errhandler.HandleError(err)
		}

		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	setDefaults()

	viper.SetEnvPrefix(strings.ToUpper(constants.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaults() {
	d := config.NewDefault()
	viper.SetDefault("api.base_url", d.API.BaseURL)
	viper.SetDefault("api.token", d.API.Token)
	viper.SetDefault("api.requests_per_second", d.API.RequestsPerSecond)
	viper.SetDefault("api.burst", d.API.Burst)
	viper.SetDefault("api.debit_as_negative", d.API.DebitAsNegative)
	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("defaults.currency", d.Defaults.Currency)
	viper.SetDefault("cache.ttl", d.Cache.TTL)
	viper.SetDefault("review.strict", d.Review.Strict)
	viper.SetDefault("log.level", d.Log.Level)
}

// initSetup runs the first-run wizard when no access token is configured.
func initSetup() error {
	if cfg.HasToken() {
		return nil
	}

	answers, err := prompts.PromptInitSetup(cfg.Defaults.Currency)
	if err != nil {
		return err
	}

	viper.Set("api.token", answers.Token)
	viper.Set("defaults.currency", answers.Currency)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cfg.API.Token = answers.Token
	cfg.Defaults.Currency = answers.Currency

	pterm.Success.Printf("Configuration saved to %s\n", viper.ConfigFileUsed())

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	setDefaults()
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Chmod(configPath, 0600)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
