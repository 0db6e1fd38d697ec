package app

import (
	"io"

	"secrettree/internal/domain"
	derivesvc "secrettree/internal/services/derive"
	seedsvc "secrettree/internal/services/seed"
	"secrettree/internal/store"
	"secrettree/internal/util/logger"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Seeds    domain.SeedStore
	Purposes domain.PurposeRegistry
	Log      *logger.Logger
}

// NewWire constructs the dependency graph from cfg. A nil log builds one
// from cfg.Logger.
func NewWire(cfg *Config, log *logger.Logger) (*Wire, error) {
	if log == nil {
		var err error
		if log, err = logger.New(&cfg.Logger); err != nil {
			return nil, err
		}
	}

	// File-based stores
	seedStore := store.NewSeedFileStore(cfg.SeedPath(), cfg.KDF)
	purposes, err := store.OpenPurposeDB(cfg.PurposesPath())
	if err != nil {
		return nil, err
	}

	return &Wire{Seeds: seedStore, Purposes: purposes, Log: log}, nil
}

// App builds the high-level services. random feeds seed generation; nil
// means crypto/rand.
func (w *Wire) App(random io.Reader) *App {
	seeds := seedsvc.New(w.Seeds, w.Log, random)
	return New(seeds, derivesvc.New(seeds, w.Purposes, w.Log))
}

// Close releases the purpose registry and flushes the logger.
func (w *Wire) Close() error {
	_ = w.Log.Sync()
	return w.Purposes.Close()
}
