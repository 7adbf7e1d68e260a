package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
)

// UpdateCmd returns the lead update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change one field of a lead",
		Long: fmt.Sprintf(`Change exactly one field of a lead.

Fields: %s
Header names ("Phone", "Lead Status") and short aliases (zip, status, type) are accepted.
Lead status may be given by name or by index 0-5.

Examples:
  leadbook lead update --id=3 --field=phone --value="555-0199"
  leadbook lead update --id=3 --field=status --value="Good Lead"
  leadbook lead update --id=3 --field=notes --value=""
`, strings.Join(leadservice.Fields, ", ")),
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Lead ID (required)")
	cmd.Flags().String("field", "", "Field to change (required)")
	cmd.Flags().String("value", "", "New value (required, may be empty)")
	for _, name := range []string{"id", "field", "value"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)
	field := args.GetString("field", "")
	value := args.GetString("value", "")

	svc := args.App.LeadService
	if err := svc.UpdateLeadField(ctx, id, field, value); err != nil {
		return nil, fmt.Errorf("lead %d: %w", id, err)
	}

	lead, err := svc.GetLead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lead %d: %w", id, err)
	}
	return &leadResult{Lead: lead, action: "updated"}, nil
}

func parseUpdateFlags(cmd *cobra.Command) error {
	if err := parseIDFlag(cmd); err != nil {
		return err
	}
	field, _ := cmd.Flags().GetString("field")
	if _, err := leadservice.NormalizeField(field); err != nil {
		return fmt.Errorf("unknown field %q (fields: %s)", field, strings.Join(leadservice.Fields, ", "))
	}
	return nil
}
