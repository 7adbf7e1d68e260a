package config

import "github.com/thenoetrevino/leadbook/internal/config/colors"

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

// ColorScheme is the theme section of the config
type ColorScheme = colors.ColorScheme
