package theme

import "github.com/thenoetrevino/leadbook/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight   string
	Subtle      string
	Normal      string
	Title       string
	Create      string
	Edit        string
	Delete      string
	TableBorder string
	HeaderFg    string
	HeaderBg    string
	SelectedFg  string
	SelectedBg  string
	InfoFg      string
	InfoBg      string
	WarningFg   string
	WarningBg   string
	ErrorFg     string
	ErrorBg     string
	StatusBarBg string
	StatusBarFg string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	TableBorder = colors.TableBorder
	HeaderFg = colors.HeaderFg
	HeaderBg = colors.HeaderBg
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarFg = colors.StatusBarText
}
