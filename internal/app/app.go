package app

import "secrettree/internal/domain"

// App is the service surface the CLI commands use.
type App struct {
	Seeds  domain.SeedService
	Derive domain.DeriveService
}

func New(seeds domain.SeedService, derive domain.DeriveService) *App {
	return &App{
		Seeds:  seeds,
		Derive: derive,
	}
}
