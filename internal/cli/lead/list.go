package lead

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// ListCmd returns the lead list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all leads",
		Long: `List every lead in id order.

Examples:
  # Human-readable table
  leadbook lead list

  # Only leads with a given status (name or index 0-5)
  leadbook lead list --status="Good Lead"

  # JSON output for scripts
  leadbook lead list --json

  # Quiet mode (one ID per line)
  leadbook lead list --quiet
`,
		RunE: handler.Command(&listHandler{}, parseListFlags),
	}

	cmd.Flags().String("status", "", "Only show leads with this status")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing leads
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	leads, err := args.App.LeadService.ListLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	if raw := args.GetString("status", ""); raw != "" {
		status, _ := models.ParseLeadStatus(raw)
		filtered := make([]*models.Lead, 0, len(leads))
		for _, l := range leads {
			if l.LeadStatus == status {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	return leadListResult(leads), nil
}

func parseListFlags(cmd *cobra.Command) error {
	status, _ := cmd.Flags().GetString("status")
	if status == "" {
		return nil
	}
	if _, err := models.ParseLeadStatus(status); err != nil {
		return fmt.Errorf("invalid --status %q", status)
	}
	return nil
}
