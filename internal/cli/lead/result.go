package lead

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/leadbook/internal/cli"
	"github.com/thenoetrevino/leadbook/internal/cli/styles"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// leadResult is a single lead returned by add, show and update
type leadResult struct {
	*models.Lead
	action string
}

// GetID implements the GetID interface for quiet mode output
func (r *leadResult) GetID() int {
	return r.ID
}

// Human implements cli.HumanPrinter
func (r *leadResult) Human() string {
	var b strings.Builder
	if r.action != "" {
		fmt.Fprintf(&b, "✓ Lead %d %s successfully\n", r.ID, r.action)
	}
	b.WriteString(styles.RenderLead(r.Lead))
	b.WriteString("\n")
	return b.String()
}

// leadListResult is the output of lead list
type leadListResult []*models.Lead

// GetIDs implements quiet mode output (one ID per line)
func (r leadListResult) GetIDs() []int {
	ids := make([]int, len(r))
	for i, l := range r {
		ids[i] = l.ID
	}
	return ids
}

// Human implements cli.HumanPrinter
func (r leadListResult) Human() string {
	if len(r) == 0 {
		return "No leads found\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Status", "Name", "Phone", "Email", "Job Type", "Address").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, l := range r {
		t.Row(
			strconv.Itoa(l.ID),
			string(l.LeadStatus),
			cli.Truncate(l.DisplayName(), 24),
			l.Phone,
			cli.Truncate(l.Email, 28),
			string(l.JobType),
			cli.Truncate(l.DisplayAddress(), 36),
		)
	}

	return fmt.Sprintf("Found %d leads:\n%s\n", len(r), t.String())
}

// deleteResult is the output of lead delete
type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// Human implements cli.HumanPrinter
func (r *deleteResult) Human() string {
	if !r.Deleted {
		return "Cancelled\n"
	}
	return fmt.Sprintf("✓ Lead %d deleted successfully\n", r.ID)
}

// seedResult is the output of lead seed
type seedResult struct {
	Count int   `json:"count"`
	IDs   []int `json:"ids"`
}

// GetIDs implements quiet mode output
func (r *seedResult) GetIDs() []int {
	return r.IDs
}

// Human implements cli.HumanPrinter
func (r *seedResult) Human() string {
	return fmt.Sprintf("✓ Seeded %d leads\n", r.Count)
}
