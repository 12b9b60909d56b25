package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hance08/lunchbox/internal/config"
	"github.com/hance08/lunchbox/internal/constants"
	"github.com/hance08/lunchbox/internal/logger"
	"github.com/hance08/lunchbox/internal/lunchmoney"
	"github.com/hance08/lunchbox/internal/service"
	"github.com/hance08/lunchbox/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Client  *lunchmoney.Client
	Config  *config.Config
	DBPath  string
	Log     *log.Logger
}

// NewApp initialize logger, database and the Lunch Money client, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	l := logger.New(cfg.Log.Level)

	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client, err := lunchmoney.NewClient(lunchmoney.Options{
		BaseURL:           cfg.API.BaseURL,
		Token:             cfg.API.Token,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
		Logger:            logger.Component(l, "lunchmoney"),
	})
	if err != nil {
		dbStore.Close()
		return nil, nil, fmt.Errorf("failed to create Lunch Money client: %w", err)
	}

	svc := service.NewService(client, dbStore, cfg, l)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			l.Error("failed to close database", "err", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Client:  client,
		Config:  cfg,
		DBPath:  dbPath,
		Log:     l,
	}, cleanup, nil
}

// ResolveDBPath expands the configured database path, defaulting to the
// app data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, constants.AppName+".db"), nil
	}
	return ExpandPath(cfg.Database.Path)
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
