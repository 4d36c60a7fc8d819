// Package lipgloss provides theme implementations using Lipgloss-compatible colors.
package lipgloss

import "github.com/stevenrichter16/mypoem"

// Compile-time interface verification.
var _ mypoem.Theme = (*Theme)(nil)

// Theme implements mypoem.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles mypoem.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() mypoem.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Colors follow the Catppuccin Mocha palette.
func DarkTheme() *Theme {
	return &Theme{
		styles: mypoem.Styles{
			Added: mypoem.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1", // Green
			},
			Deleted: mypoem.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Red
			},
			Unchanged: mypoem.ColorPair{
				Foreground: "#cdd6f4", // Default text
			},
			Header: mypoem.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Summary: mypoem.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Help: mypoem.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
// Colors follow the Catppuccin Latte palette.
func LightTheme() *Theme {
	return &Theme{
		styles: mypoem.Styles{
			Added: mypoem.ColorPair{
				Foreground: "#4c4f69",
				Background: "#d4f4d4", // Subtle green
			},
			Deleted: mypoem.ColorPair{
				Foreground: "#4c4f69",
				Background: "#f4d4d4", // Subtle red
			},
			Unchanged: mypoem.ColorPair{
				Foreground: "#4c4f69", // Default text
			},
			Header: mypoem.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Summary: mypoem.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Help: mypoem.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
		},
	}
}
