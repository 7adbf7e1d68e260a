package note

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/services/calendar"
)

// GetCmd returns the note get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the note for a date",
		Long: `Print the note stored for a date (YYYY-MM-DD, default today).
A date without a note prints nothing and is not an error.

Examples:
  leadbook note get
  leadbook note get --date=2024-03-09 --json
`,
		RunE: handler.Command(&getHandler{}, parseDateFlag("date")),
	}

	cmd.Flags().String("date", "today", "Date (YYYY-MM-DD, yesterday, today or tomorrow)")
	handler.AddOutputFlags(cmd, "Print the note text only")

	return cmd
}

type getHandler struct{}

// Execute implements the Handler interface
func (h *getHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	date, err := calendar.ParseDate(args.GetString("date", "today"))
	if err != nil {
		return nil, err
	}

	text, err := args.App.CalendarService.GetNote(ctx, date)
	if err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		// quiet mode has no ID to print, so print the bare text
		return text, nil
	}
	return &noteResult{Date: models.CalendarKey(date), Notes: text}, nil
}

// parseDateFlag validates an optional date flag before any store is opened
func parseDateFlag(names ...string) func(*cobra.Command) error {
	return func(cmd *cobra.Command) error {
		for _, name := range names {
			value, _ := cmd.Flags().GetString(name)
			if value == "" {
				continue
			}
			if _, err := calendar.ParseDate(value); err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
		}
		return nil
	}
}
