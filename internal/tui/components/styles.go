// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	clistyles "github.com/thenoetrevino/leadbook/internal/cli/styles"
	"github.com/thenoetrevino/leadbook/internal/config/colors"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle defines the appearance of page titles
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints and empty states
	SubtleStyle lipgloss.Style

	// LabelStyle is used for form and detail labels
	LabelStyle lipgloss.Style

	// Table styles
	HeaderCellStyle   lipgloss.Style
	CellStyle         lipgloss.Style
	SelectedRowStyle  lipgloss.Style
	SelectedCellStyle lipgloss.Style
	TableBorderColor  string

	// FormBoxStyle frames the lead input form (green border)
	FormBoxStyle lipgloss.Style

	// EditInputBoxStyle frames the cell editor (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames the delete confirmation (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DialogBoxStyle frames neutral dialogs such as the export picker
	DialogBoxStyle lipgloss.Style

	// EditModeBadgeStyle marks the table as editable
	EditModeBadgeStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	statusColors map[models.LeadStatus]string
)

// StatusColor returns the theme color of a lead status
func StatusColor(status models.LeadStatus) string {
	return statusColors[status]
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	HeaderCellStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.HeaderFg)).
		Background(lipgloss.Color(colors.HeaderBg)).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1)

	SelectedRowStyle = CellStyle.
		Background(lipgloss.Color(colors.SelectedBg))

	SelectedCellStyle = CellStyle.
		Bold(true).
		Foreground(lipgloss.Color(colors.SelectedFg)).
		Background(lipgloss.Color(colors.Accent))

	TableBorderColor = colors.TableBorder

	// Dialog box styles
	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1, 2)

	DialogBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	EditModeBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.SelectedFg)).
		Background(lipgloss.Color(colors.Edit)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	statusColors = clistyles.StatusColors(colors)
}
