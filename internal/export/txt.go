package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/thenoetrevino/leadbook/internal/models"
)

// WriteTXT writes one "Label: value" block per lead, each followed by a blank line.
// No leads means an empty file.
func WriteTXT(w io.Writer, leads []*models.Lead) error {
	bw := bufio.NewWriter(w)
	for _, lead := range leads {
		for i, value := range Row(lead) {
			if _, err := fmt.Fprintf(bw, "%s: %s\n", Headers[i], value); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
