package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/thenoetrevino/leadbook/internal/models"
)

// WriteCSV writes a header row followed by one row per lead
func WriteCSV(w io.Writer, leads []*models.Lead) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, lead := range leads {
		if err := writer.Write(Row(lead)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
