// Package lead holds all cli commands related to leads
// e.g., leadbook lead ...
package lead

import (
	"github.com/spf13/cobra"
)

// LeadCmd returns the lead parent command
func LeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SeedCmd())

	return cmd
}
