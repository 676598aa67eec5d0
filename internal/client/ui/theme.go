package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
)

// Palette is the set of colours used by a theme.
type Palette struct {
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color
}

var palettes = map[models.Theme]Palette{
	models.ThemeLight:     {Accent: "#4f46e5", Text: "#111827", Muted: "#6b7280", Error: "#dc2626", Success: "#16a34a", Border: "#d1d5db"},
	models.ThemeDark:      {Accent: "#818cf8", Text: "#f3f4f6", Muted: "#9ca3af", Error: "#f87171", Success: "#4ade80", Border: "#374151"},
	models.ThemeAmoled:    {Accent: "#a78bfa", Text: "#ffffff", Muted: "#737373", Error: "#ef4444", Success: "#22c55e", Border: "#262626"},
	models.ThemeNeon:      {Accent: "#f0abfc", Text: "#e0f2fe", Muted: "#67e8f9", Error: "#fb7185", Success: "#a3e635", Border: "#c026d3"},
	models.ThemeGlass:     {Accent: "#7dd3fc", Text: "#f8fafc", Muted: "#cbd5e1", Error: "#fca5a5", Success: "#86efac", Border: "#94a3b8"},
	models.ThemeAurora:    {Accent: "#34d399", Text: "#ecfdf5", Muted: "#a7f3d0", Error: "#f87171", Success: "#6ee7b7", Border: "#0f766e"},
	models.ThemeRose:      {Accent: "#fb7185", Text: "#fff1f2", Muted: "#fda4af", Error: "#e11d48", Success: "#4ade80", Border: "#9f1239"},
	models.ThemeCyberpunk: {Accent: "#facc15", Text: "#fef9c3", Muted: "#22d3ee", Error: "#f43f5e", Success: "#a3e635", Border: "#ec4899"},
	models.ThemeForest:    {Accent: "#4ade80", Text: "#f0fdf4", Muted: "#86efac", Error: "#f87171", Success: "#bef264", Border: "#166534"},
	models.ThemeSand:      {Accent: "#d97706", Text: "#451a03", Muted: "#92400e", Error: "#b91c1c", Success: "#15803d", Border: "#fcd34d"},
}

// PaletteFor returns the palette of t, or the default theme's palette.
func PaletteFor(t models.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[models.DefaultTheme]
}
