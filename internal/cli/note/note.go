// Package note holds the calendar note commands
// e.g., leadbook note ...
package note

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"calendar"},
		Short:   "Read and write calendar notes (one per day)",
	}

	cmd.AddCommand(GetCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// noteResult is one day's note
type noteResult struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
	saved bool
}

// Human implements cli.HumanPrinter
func (r *noteResult) Human() string {
	if r.saved {
		return fmt.Sprintf("✓ Note for %s saved\n", r.Date)
	}
	if r.Notes == "" {
		return fmt.Sprintf("No note for %s\n", r.Date)
	}
	return fmt.Sprintf("%s\n\n%s\n", r.Date, r.Notes)
}

// noteListResult is the output of note list
type noteListResult []*models.CalendarNote

// Human implements cli.HumanPrinter
func (r noteListResult) Human() string {
	if len(r) == 0 {
		return "No notes found\n"
	}
	out := fmt.Sprintf("Found %d notes:\n", len(r))
	for _, n := range r {
		out += fmt.Sprintf("\n%s\n%s\n", n.Date, n.Notes)
	}
	return out
}
