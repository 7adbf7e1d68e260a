package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
)

// DeleteCmd returns the lead delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a lead",
		Long: `Delete a lead by ID. Asks for confirmation unless --yes is given.
Deleting an ID that does not exist is not an error.

Examples:
  # Delete with confirmation
  leadbook lead delete --id=3

  # Skip confirmation (required with --json or --quiet)
  leadbook lead delete --id=3 --yes
`,
		RunE: handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Lead ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	handler.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)
	cmd := args.Cmd()

	if !args.GetBool("yes") {
		if args.GetBool("json") || args.GetBool("quiet") {
			return nil, &cli.UsageError{Msg: "refusing to delete without --yes in --json or --quiet mode"}
		}
		prompt := fmt.Sprintf("Delete lead #%d?", id)
		if !cli.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt) {
			return &deleteResult{ID: id}, nil
		}
	}

	if err := args.App.LeadService.DeleteLead(ctx, id); err != nil {
		return nil, err
	}
	return &deleteResult{ID: id, Deleted: true}, nil
}
