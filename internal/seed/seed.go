// Package seed fills the lead store with realistic fake leads for demos and manual testing
package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/services/lead"
)

// Config controls generation
type Config struct {
	Count int
	// Seed makes generation repeatable; 0 picks a random seed
	Seed int64

	AddressLine2Chance float64 // 0.0-1.0
	NotesChance        float64
	ReferralChance     float64
	// SpreadStatuses moves generated leads through random statuses after creation
	SpreadStatuses bool
}

// DefaultConfig returns a mix resembling a few weeks of real intake
func DefaultConfig(count int) Config {
	return Config{
		Count:              count,
		AddressLine2Chance: 0.2,
		NotesChance:        0.6,
		ReferralChance:     0.3,
		SpreadStatuses:     true,
	}
}

var jobTypes = []string{
	string(models.JobTypeResidential),
	string(models.JobTypeResidential),
	string(models.JobTypeCommercial),
	string(models.JobTypeUnknown),
}

var noteTemplates = []string{
	"Wants a quote for %s.",
	"Asked about %s, call back after 5pm.",
	"Referred a neighbour, interested in %s.",
	"Budget is tight, %s only.",
}

var jobs = []string{
	"a roof repair", "new gutters", "a kitchen remodel", "siding replacement",
	"a deck", "window installation", "a bathroom refit", "drywall patching",
}

// Generator builds lead requests from a gofakeit source
type Generator struct {
	faker  *gofakeit.Faker
	config Config
}

// NewGenerator creates a generator for config
func NewGenerator(config Config) *Generator {
	return &Generator{
		faker:  gofakeit.New(config.Seed),
		config: config,
	}
}

// Request builds one lead request
func (g *Generator) Request() lead.CreateLeadRequest {
	f := g.faker
	req := lead.CreateLeadRequest{
		FirstName:    f.FirstName(),
		LastName:     f.LastName(),
		AddressLine1: f.Street(),
		City:         f.City(),
		State:        f.StateAbr(),
		Zipcode:      f.Zip(),
		Phone:        f.Phone(),
		Email:        f.Email(),
		JobType:      f.RandomString(jobTypes),
	}
	if f.Float64() < g.config.AddressLine2Chance {
		req.AddressLine2 = fmt.Sprintf("Apt %d", f.Number(1, 40))
	}
	if f.Float64() < g.config.NotesChance {
		req.Notes = fmt.Sprintf(f.RandomString(noteTemplates), f.RandomString(jobs))
	}
	if f.Float64() < g.config.ReferralChance {
		req.ReferredBy = f.Name()
	}
	return req
}

// Status picks a random lead status
func (g *Generator) Status() models.LeadStatus {
	return models.LeadStatuses[g.faker.Number(0, len(models.LeadStatuses)-1)]
}

// Run creates config.Count leads through svc and returns them
func Run(ctx context.Context, svc lead.Service, config Config) ([]*models.Lead, error) {
	g := NewGenerator(config)
	created := make([]*models.Lead, 0, config.Count)

	for i := 0; i < config.Count; i++ {
		l, err := svc.CreateLead(ctx, g.Request())
		if err != nil {
			return created, fmt.Errorf("failed to seed lead %d: %w", i+1, err)
		}

		if config.SpreadStatuses {
			status := g.Status()
			if status != l.LeadStatus {
				if err := svc.UpdateLeadField(ctx, l.ID, "lead_status", string(status)); err != nil {
					return created, fmt.Errorf("failed to set status for lead %d: %w", l.ID, err)
				}
				l.LeadStatus = status
			}
		}
		created = append(created, l)
	}
	return created, nil
}
