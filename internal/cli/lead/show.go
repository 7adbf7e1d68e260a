package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
)

// ShowCmd returns the lead show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one lead",
		Long: `Show every field of one lead.

Examples:
  leadbook lead show --id=3
  leadbook lead show --id=3 --json
`,
		RunE: handler.Command(&showHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Lead ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)

	lead, err := args.App.LeadService.GetLead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lead %d: %w", id, err)
	}

	return &leadResult{Lead: lead}, nil
}

// parseIDFlag validates the --id flag shared by show, update and delete
func parseIDFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseLeadID("id")
	return err
}
