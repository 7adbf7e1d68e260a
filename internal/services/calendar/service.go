package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// Service defines the calendar note operations
type Service interface {
	GetNote(ctx context.Context, date time.Time) (string, error)
	SaveNote(ctx context.Context, date time.Time, text string) error
	ListNotes(ctx context.Context, from, to time.Time) ([]*models.CalendarNote, error)
}

// repository defines the data access methods needed by the calendar service
type repository interface {
	GetNote(ctx context.Context, date string) (string, error)
	SaveNote(ctx context.Context, date, notes string) error
	ListNotes(ctx context.Context, from, to string) ([]*models.CalendarNote, error)
}

type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new calendar service. A nil logger falls back to slog.Default().
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// GetNote returns the note for the day of date, or "" if none was saved
func (s *service) GetNote(ctx context.Context, date time.Time) (string, error) {
	key := models.CalendarKey(date)
	notes, err := s.repo.GetNote(ctx, key)
	if err != nil {
		s.logger.Error("failed to get calendar note", "date", key, "error", err)
		return "", err
	}
	return notes, nil
}

// SaveNote replaces the note for the day of date. Empty text is stored as-is.
func (s *service) SaveNote(ctx context.Context, date time.Time, text string) error {
	key := models.CalendarKey(date)
	if err := s.repo.SaveNote(ctx, key, text); err != nil {
		s.logger.Error("failed to save calendar note", "date", key, "error", err)
		return fmt.Errorf("failed to save note: %w", err)
	}
	s.logger.Debug("calendar note saved", "date", key)
	return nil
}

// ListNotes returns every saved note between from and to inclusive
func (s *service) ListNotes(ctx context.Context, from, to time.Time) ([]*models.CalendarNote, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	notes, err := s.repo.ListNotes(ctx, models.CalendarKey(from), models.CalendarKey(to))
	if err != nil {
		s.logger.Error("failed to list calendar notes", "error", err)
		return nil, err
	}
	return notes, nil
}

type dateInput struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

var validate = validator.New()

// relativeDays are the words accepted in place of a date, as day offsets from today
var relativeDays = map[string]int{
	"yesterday": -1,
	"today":     0,
	"tomorrow":  1,
}

// ParseDate parses a YYYY-MM-DD key as used by the CLI.
// "yesterday", "today" and "tomorrow" are accepted as well.
func ParseDate(s string) (time.Time, error) {
	return parseDateAt(s, time.Now())
}

func parseDateAt(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if offset, ok := relativeDays[strings.ToLower(s)]; ok {
		return time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, time.Local), nil
	}
	if err := validate.Struct(dateInput{Date: s}); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return time.ParseInLocation(models.CalendarDateLayout, s, time.Local)
}
