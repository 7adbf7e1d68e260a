package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format names an export file type
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format
var Formats = []Format{FormatCSV, FormatPDF, FormatTXT, FormatXLSX}

// ErrUnknownFormat is returned for format names outside Formats
var ErrUnknownFormat = errors.New("unknown export format (must be csv, pdf, txt or xlsx)")

// ParseFormat resolves a format name. "text" and "excel" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatTXT, nil
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension for f, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// DefaultFileName is the name used when no output path is given, e.g. leads-2024-03-09.csv
func DefaultFileName(f Format, now time.Time) string {
	return "leads-" + now.Format("2006-01-02") + f.Extension()
}
