package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// ownsApp is false when the App was injected and belongs to the caller
	ownsApp bool
}

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already-built App.
// Commands run under it use that App instead of opening the stores.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// NewCLI loads the configuration and opens every store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, ownsApp: true}, nil
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	return c.App.Close()
}
