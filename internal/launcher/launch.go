package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/tui/core"
)

// shutdownGrace is how long a signalled shutdown waits for the program to exit
const shutdownGrace = 2 * time.Second

// Launch opens the stores named by cfg and runs the TUI until the user quits
// or the process is interrupted.
func Launch(cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit in time")
		}
	}

	return nil
}
