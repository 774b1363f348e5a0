package app

import (
	"edkeyring/internal/domain"
	"edkeyring/internal/services/keyring"
)

// App bundles the services and config that commands use.
type App struct {
	Keys   domain.KeyService
	Config Config
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	return &App{
		Keys:   keyring.New(),
		Config: cfg,
	}
}
