package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/services/calendar"
)

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the notes in a date range",
		Long: `List notes between --from and --to inclusive (default: the last 30 days).

Examples:
  leadbook note list
  leadbook note list --from=2024-03-01 --to=2024-03-31 --json
`,
		RunE: handler.Command(&listHandler{}, parseDateFlag("from", "to")),
	}

	cmd.Flags().String("from", "", "First date (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().String("to", "today", "Last date (YYYY-MM-DD or today)")
	handler.AddOutputFlags(cmd, "Dates only")

	return cmd
}

type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	to, err := calendar.ParseDate(args.GetString("to", "today"))
	if err != nil {
		return nil, err
	}
	from := to.AddDate(0, 0, -30)
	if raw := args.GetString("from", ""); raw != "" {
		if from, err = calendar.ParseDate(raw); err != nil {
			return nil, err
		}
	}

	notes, err := args.App.CalendarService.ListNotes(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		dates := ""
		for _, n := range notes {
			dates += n.Date + "\n"
		}
		return dateLines(dates), nil
	}
	return noteListResult(notes), nil
}

// dateLines prints one date per line in quiet mode
type dateLines string

func (d dateLines) Human() string { return string(d) }
