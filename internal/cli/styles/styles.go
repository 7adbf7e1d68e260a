package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Phone:", "Job Type:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Notes"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	statusColors = map[models.LeadStatus]string{}
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	statusColors = StatusColors(colors)
}

// StatusColors assigns a theme color to each lead status
func StatusColors(colors config.ColorScheme) map[models.LeadStatus]string {
	return map[models.LeadStatus]string{
		models.LeadStatusInSystem:     colors.Subtle,
		models.LeadStatusGoodLead:     colors.Create,
		models.LeadStatusContactLater: colors.WarningFg,
		models.LeadStatusBadLead:      colors.Delete,
		models.LeadStatusPassedAlong:  colors.Edit,
		models.LeadStatusClosed:       colors.Accent,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatusChip renders a status as "[Good Lead]" in its theme color
func RenderStatusChip(status models.LeadStatus) string {
	chip := "[" + string(status) + "]"
	hex, ok := statusColors[status]
	if !ok || hex == "" {
		return chip
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Bold(true).
		Render(chip)
}

// RenderLead formats one lead as a card for `leadbook lead show`
func RenderLead(lead *models.Lead) string {
	var b strings.Builder

	name := lead.DisplayName()
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintf(&b, "%s %s\n", TitleStyle.Render(fmt.Sprintf("#%d %s", lead.ID, name)), RenderStatusChip(lead.LeadStatus))
	b.WriteString(SubtitleStyle.Render(string(lead.JobType)) + "\n\n")

	fields := []struct{ label, value string }{
		{"Address:", lead.DisplayAddress()},
		{"Phone:", lead.Phone},
		{"Email:", lead.Email},
		{"Referred By:", lead.ReferredBy},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render(f.label), ValueStyle.Render(f.value))
	}

	if lead.Notes != "" {
		b.WriteString(SectionStyle.Render("Notes") + "\n")
		b.WriteString(ValueStyle.Render(lead.Notes) + "\n")
	}

	return RenderCard(strings.TrimRight(b.String(), "\n"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
