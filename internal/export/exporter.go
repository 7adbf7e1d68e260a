// Package export renders the lead list as CSV, plain text, PDF or XLSX
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/leadbook/internal/models"
)

// Headers is the fixed column order shared by every tabular format
var Headers = []string{"Name", "Address", "Phone", "Email", "Notes", "Job Type"}

// Row composes the export columns for one lead, in Headers order
func Row(lead *models.Lead) []string {
	return []string{
		lead.DisplayName(),
		lead.DisplayAddress(),
		lead.Phone,
		lead.Email,
		lead.Notes,
		string(lead.JobType),
	}
}

// leadLister is the read side of the lead service
type leadLister interface {
	ListLeads(ctx context.Context) ([]*models.Lead, error)
}

// writeFunc renders a snapshot of leads to w
type writeFunc func(w io.Writer, leads []*models.Lead) error

var writers = map[Format]writeFunc{
	FormatCSV:  WriteCSV,
	FormatTXT:  WriteTXT,
	FormatPDF:  WritePDF,
	FormatXLSX: WriteXLSX,
}

// Exporter takes a snapshot of the lead list and renders it
type Exporter struct {
	leads  leadLister
	logger *slog.Logger
}

// NewExporter creates an exporter over a lead source. A nil logger falls back to slog.Default().
func NewExporter(leads leadLister, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{leads: leads, logger: logger}
}

// Export writes the current lead list to w. It returns the number of leads written.
func (e *Exporter) Export(ctx context.Context, format Format, w io.Writer) (int, error) {
	write, ok := writers[format]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	leads, err := e.leads.ListLeads(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read leads: %w", err)
	}

	if err := write(w, leads); err != nil {
		e.logger.Error("export failed", "format", format, "error", err)
		return 0, fmt.Errorf("failed to write %s: %w", format, err)
	}
	return len(leads), nil
}

// ExportFile writes the current lead list to path. The file is written next to
// path and renamed over it once complete, so a failed export leaves any
// earlier file at path untouched.
func (e *Exporter) ExportFile(ctx context.Context, format Format, path string) (int, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := e.Export(ctx, format, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close file: %w", closeErr)
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err == nil {
		if err = os.Rename(tmp.Name(), path); err != nil {
			err = fmt.Errorf("failed to replace %s: %w", path, err)
		}
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return 0, err
	}

	e.logger.Info("leads exported", "format", format, "path", path, "count", n)
	return n, nil
}
