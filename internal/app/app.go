package app

import (
	"fmt"
	"time"

	"caixa/internal/config"
	"caixa/internal/ledger"
	"caixa/internal/logging"
)

type App struct {
	Ledger *ledger.Ledger
	Config *config.Config
}

// NewApp initializes logging and the in-memory ledger, then returns the App
// entity with its cleanup function.
func NewApp(cfg *config.Config) (*App, func(), error) {
	logger, cleanup, err := logging.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return &App{
		Ledger: ledger.New(cfg, time.Now, logger),
		Config: cfg,
	}, cleanup, nil
}
