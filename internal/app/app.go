package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/database"
	"github.com/thenoetrevino/leadbook/internal/export"
	calendarservice "github.com/thenoetrevino/leadbook/internal/services/calendar"
	credentialservice "github.com/thenoetrevino/leadbook/internal/services/credential"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (one handle per store)
	repo *database.Repository

	config *config.Config
	logger *slog.Logger

	// Service layer (business logic)
	LeadService       leadservice.Service
	CalendarService   calendarservice.Service
	CredentialService credentialservice.Service
	Exporter          *export.Exporter
}

// New creates a new App with all services initialized over repo.
// This is the single entry point for creating the application container.
func New(repo *database.Repository, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	leads := leadservice.NewService(repo, cfg.logger)
	return &App{
		repo:              repo,
		config:            cfg.config,
		logger:            cfg.logger,
		LeadService:       leads,
		CalendarService:   calendarservice.NewService(repo, cfg.logger),
		CredentialService: credentialservice.NewService(repo, cfg.logger),
		Exporter:          export.NewExporter(leads, cfg.logger),
	}
}

// Open opens every store named by cfg and builds the App over them.
// The returned App owns the handles; Close releases them.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	repo, err := database.Open(ctx, cfg.StorePaths())
	if err != nil {
		return nil, fmt.Errorf("failed to open stores: %w", err)
	}
	return New(repo, append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Config returns the configuration the App was built with
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store handles opened by Open.
// Handles injected through New are left to their owner.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
