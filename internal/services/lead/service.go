package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// Service defines all lead-related business operations
type Service interface {
	// Read operations
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	GetLead(ctx context.Context, id int) (*models.Lead, error)

	// Write operations
	CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error)
	UpdateLeadField(ctx context.Context, id int, field, value string) error
	DeleteLead(ctx context.Context, id int) error
}

// CreateLeadRequest carries the input form. Blank fields are accepted as-is.
// JobType is free text resolved with models.ParseJobType ("" means Unknown).
type CreateLeadRequest struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Zipcode      string
	Phone        string
	Email        string
	Notes        string
	ReferredBy   string
	JobType      string
}

// repository defines the data access methods needed by the lead service
type repository interface {
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	GetAllLeads(ctx context.Context) ([]*models.Lead, error)
	GetLeadByID(ctx context.Context, id int) (*models.Lead, error)
	UpdateLeadField(ctx context.Context, id int, column, value string) error
	DeleteLead(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo     repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new lead service. A nil logger falls back to slog.Default().
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

// ListLeads returns a fresh snapshot of every lead, ordered by id
func (s *service) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.repo.GetAllLeads(ctx)
	if err != nil {
		s.logger.Error("failed to list leads", "error", err)
		return nil, err
	}
	return leads, nil
}

// GetLead retrieves a single lead
func (s *service) GetLead(ctx context.Context, id int) (*models.Lead, error) {
	if id <= 0 {
		return nil, ErrInvalidLeadID
	}
	lead, err := s.repo.GetLeadByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		s.logger.Error("failed to get lead", "lead_id", id, "error", err)
		return nil, err
	}
	return lead, nil
}

// CreateLead stores a new lead. Its status is always In System.
func (s *service) CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	jobType, err := models.ParseJobType(req.JobType)
	if err != nil {
		return nil, ErrInvalidJobType
	}

	lead := &models.Lead{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Zipcode:      req.Zipcode,
		Phone:        req.Phone,
		Email:        req.Email,
		Notes:        req.Notes,
		ReferredBy:   req.ReferredBy,
		JobType:      jobType,
		LeadStatus:   models.DefaultLeadStatus,
	}
	if err := s.validateLead(lead); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateLead(ctx, lead)
	if err != nil {
		s.logger.Error("failed to create lead", "error", err)
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	s.logger.Info("lead created", "lead_id", created.ID)
	return created, nil
}

// UpdateLeadField patches one field. field may be a column name or header label;
// job_type and lead_status values are parsed and stored in canonical form.
func (s *service) UpdateLeadField(ctx context.Context, id int, field, value string) error {
	if id <= 0 {
		return ErrInvalidLeadID
	}

	column, err := NormalizeField(field)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	switch column {
	case "job_type":
		jobType, err := models.ParseJobType(value)
		if err != nil {
			return ErrInvalidJobType
		}
		value = string(jobType)
	case "lead_status":
		status, err := models.ParseLeadStatus(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLeadStatus, value)
		}
		value = string(status)
	}

	err = s.repo.UpdateLeadField(ctx, id, column, value)
	if errors.Is(err, models.ErrNotFound) {
		return ErrLeadNotFound
	}
	if err != nil {
		s.logger.Error("failed to update lead", "lead_id", id, "field", column, "error", err)
		return fmt.Errorf("failed to update lead: %w", err)
	}
	return nil
}

// DeleteLead removes a lead; a lead that does not exist is silently ignored.
// Callers are expected to have confirmed the deletion with the user.
func (s *service) DeleteLead(ctx context.Context, id int) error {
	if err := s.repo.DeleteLead(ctx, id); err != nil {
		s.logger.Error("failed to delete lead", "lead_id", id, "error", err)
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// validateLead checks the enum fields of a lead before it is written
func (s *service) validateLead(lead *models.Lead) error {
	err := s.validate.Struct(lead)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "JobType":
				return ErrInvalidJobType
			case "LeadStatus":
				return ErrInvalidLeadStatus
			}
		}
	}
	return fmt.Errorf("invalid lead: %w", err)
}
