package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/backend/sqlite"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/config"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/controller"
	"github.com/calebasbridge/personal-finance-app-sub001/internal/logging"
)

type App struct {
	API        backend.API
	Controller *controller.Controller
	Log        *logrus.Logger
}

// NewApp initializes logging, the database-backed backend, and the
// transaction controller, then returns the App entity.
func NewApp(cfg *config.Config) (*App, func(), error) {
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, _ := getAppDataDir()
		dbPath = filepath.Join(appDir, "pfa.db")
	}

	store, err := sqlite.NewStore(dbPath, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	ctrl := controller.New(store, log)

	cleanup := func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		API:        store,
		Controller: ctrl,
		Log:        log,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".pfa"), nil
	}

	return filepath.Join(configDir, "pfa"), nil
}
