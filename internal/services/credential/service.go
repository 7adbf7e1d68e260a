package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// Service manages the single Twilio credential pair
type Service interface {
	Load(ctx context.Context) (*models.TwilioCredential, error)
	Save(ctx context.Context, req SaveRequest) error
}

// SaveRequest holds the values entered by the user. Surrounding whitespace is dropped.
type SaveRequest struct {
	SID       string `validate:"required"`
	AuthToken string `validate:"required"`
}

type repository interface {
	GetCredential(ctx context.Context) (*models.TwilioCredential, error)
	ReplaceCredential(ctx context.Context, cred models.TwilioCredential) error
}

type service struct {
	repo     repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new credential service. A nil logger falls back to slog.Default().
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Load returns the saved pair, or ErrNotSet
func (s *service) Load(ctx context.Context) (*models.TwilioCredential, error) {
	cred, err := s.repo.GetCredential(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrNotSet
	}
	if err != nil {
		s.logger.Error("failed to load twilio credentials", "error", err)
		return nil, err
	}
	return cred, nil
}

// Save replaces whatever pair was stored before
func (s *service) Save(ctx context.Context, req SaveRequest) error {
	req.SID = strings.TrimSpace(req.SID)
	req.AuthToken = strings.TrimSpace(req.AuthToken)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "AuthToken" {
			return ErrEmptyToken
		}
		return ErrEmptySID
	}

	err := s.repo.ReplaceCredential(ctx, models.TwilioCredential{
		SID:       req.SID,
		AuthToken: req.AuthToken,
	})
	if err != nil {
		s.logger.Error("failed to save twilio credentials", "error", err)
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	s.logger.Info("twilio credentials saved")
	return nil
}
