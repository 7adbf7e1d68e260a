package lead

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/models"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
)

// AddCmd returns the lead add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new lead",
		Long: `Add a new lead. Every field is optional; the lead starts as "In System".

Examples:
  # Add a lead (human-readable output)
  leadbook lead add --first="Jane" --last="Doe" --phone="555-0100" --job-type=Residential

  # JSON output for scripts
  leadbook lead add --first="Jane" --email="jane@x.com" --json

  # Quiet mode for bash capture
  LEAD_ID=$(leadbook lead add --first="Jane" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("last", "", "Last name")
	cmd.Flags().String("address1", "", "Address line 1")
	cmd.Flags().String("address2", "", "Address line 2")
	cmd.Flags().String("city", "", "City")
	cmd.Flags().String("state", "", "State")
	cmd.Flags().String("zip", "", "Zipcode")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("notes", "", "Free-text notes")
	cmd.Flags().String("referred-by", "", "Who referred this lead")
	cmd.Flags().String("job-type", string(models.JobTypeUnknown), "Job type: Residential, Commercial or Unknown")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for lead creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	lead, err := args.App.LeadService.CreateLead(ctx, leadservice.CreateLeadRequest{
		FirstName:    args.GetString("first", ""),
		LastName:     args.GetString("last", ""),
		AddressLine1: args.GetString("address1", ""),
		AddressLine2: args.GetString("address2", ""),
		City:         args.GetString("city", ""),
		State:        args.GetString("state", ""),
		Zipcode:      args.GetString("zip", ""),
		Phone:        args.GetString("phone", ""),
		Email:        args.GetString("email", ""),
		Notes:        args.GetString("notes", ""),
		ReferredBy:   args.GetString("referred-by", ""),
		JobType:      args.GetString("job-type", ""),
	})
	if err != nil {
		return nil, fmt.Errorf("lead creation error: %w", err)
	}

	return &leadResult{Lead: lead, action: "created"}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	jobType, _ := cmd.Flags().GetString("job-type")
	if _, err := models.ParseJobType(jobType); err != nil {
		return fmt.Errorf("invalid --job-type %q (must be Residential, Commercial or Unknown)", jobType)
	}
	return nil
}
