package lead

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/seed"
)

// SeedCmd returns the lead seed subcommand
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake leads for demos and testing",
		Long: `Insert randomly generated leads.

Examples:
  leadbook lead seed --count=25
  leadbook lead seed --count=5 --seed=42 --quiet
`,
		RunE: handler.Command(&seedHandler{}, parseSeedFlags),
	}

	cmd.Flags().Int("count", 10, "Number of leads to create")
	cmd.Flags().Int64("seed", 0, "Random seed for repeatable data (0 = random)")
	cmd.Flags().Bool("keep-status", false, "Leave every lead In System")

	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type seedHandler struct{}

// Execute implements the Handler interface
func (h *seedHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cfg := seed.DefaultConfig(args.GetInt("count", 10))
	if v, ok := args.GetInt64("seed"); ok {
		cfg.Seed = v
	}
	cfg.SpreadStatuses = !args.GetBool("keep-status")

	created, err := seed.Run(ctx, args.App.LeadService, cfg)
	if err != nil {
		return nil, err
	}

	result := &seedResult{Count: len(created), IDs: make([]int, len(created))}
	for i, l := range created {
		result.IDs[i] = l.ID
	}
	return result, nil
}

func parseSeedFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseInt("count")
	return err
}
