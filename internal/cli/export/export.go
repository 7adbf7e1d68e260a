// Package export holds the lead export command
// e.g., leadbook export --format=pdf
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/handler"
	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/export"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every lead to CSV, PDF, TXT or XLSX",
		Long: `Export the current lead list.

Columns: Name, Address, Phone, Email, Notes, Job Type.
The format defaults to the --out extension, then to csv.
Without --out the file is written to the configured export directory
as leads-YYYY-MM-DD.<ext>. --out=- writes to stdout.

Examples:
  leadbook export --format=pdf
  leadbook export --out=~/Desktop/leads.xlsx
  leadbook export --format=csv --out=- | column -s, -t
`,
		RunE: handler.Command(&exportHandler{now: time.Now}, parseExportFlags),
	}

	cmd.Flags().StringP("format", "f", "", "Output format: csv, pdf, txt or xlsx")
	cmd.Flags().StringP("out", "o", "", "Output path (- for stdout)")
	handler.AddOutputFlags(cmd, "Print the output path only")

	return cmd
}

type exportHandler struct {
	now func() time.Time
}

// exportResult describes a finished export
type exportResult struct {
	Format export.Format `json:"format"`
	Path   string        `json:"path"`
	Count  int           `json:"count"`
}

// Human implements cli.HumanPrinter
func (r *exportResult) Human() string {
	return fmt.Sprintf("✓ Exported %d leads to %s\n", r.Count, r.Path)
}

// Execute implements the Handler interface
func (h *exportHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	out := args.GetString("out", "")
	format, err := resolveFormat(args.GetString("format", ""), out)
	if err != nil {
		return nil, err
	}

	exporter := args.App.Exporter

	if out == "-" {
		if _, err := exporter.Export(ctx, format, args.Cmd().OutOrStdout()); err != nil {
			return nil, err
		}
		return cli.Silent{}, nil
	}

	if out == "" {
		out = filepath.Join(args.App.Config().Export.Dir, export.DefaultFileName(format, h.now()))
	}
	out = config.ExpandHome(out)

	n, err := exporter.ExportFile(ctx, format, out)
	if err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return out, nil
	}
	return &exportResult{Format: format, Path: out, Count: n}, nil
}

// resolveFormat picks the explicit format, else the extension of out, else csv
func resolveFormat(flag, out string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if ext := filepath.Ext(out); ext != "" && out != "-" {
		return export.ParseFormat(ext)
	}
	return export.FormatCSV, nil
}

func parseExportFlags(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	if _, err := resolveFormat(format, out); err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if out == "-" && jsonOutput {
		return fmt.Errorf("--json cannot be combined with --out=-")
	}
	return nil
}
