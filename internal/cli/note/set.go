package note

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/services/calendar"
)

// SetCmd returns the note set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the note for a date",
		Long: `Replace the note for a date. An empty --text clears it.
Use --text=- to read the note from stdin.

Examples:
  leadbook note set --text="Call the Hendersons back"
  leadbook note set --date=2024-03-09 --text=""
  cat notes.txt | leadbook note set --date=2024-03-09 --text=-
`,
		RunE: handler.Command(&setHandler{}, parseDateFlag("date")),
	}

	cmd.Flags().String("date", "today", "Date (YYYY-MM-DD, yesterday, today or tomorrow)")
	cmd.Flags().String("text", "", "Note text (required, - reads stdin)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	handler.AddOutputFlags(cmd, "No output on success")

	return cmd
}

type setHandler struct{}

// Execute implements the Handler interface
func (h *setHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	date, err := calendar.ParseDate(args.GetString("date", "today"))
	if err != nil {
		return nil, err
	}

	text := args.GetString("text", "")
	if text == "-" {
		data, err := io.ReadAll(args.Cmd().InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read note from stdin: %w", err)
		}
		text = string(data)
	}

	if err := args.App.CalendarService.SaveNote(ctx, date, text); err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return cli.Silent{}, nil
	}
	return &noteResult{Date: models.CalendarKey(date), Notes: text, saved: true}, nil
}

