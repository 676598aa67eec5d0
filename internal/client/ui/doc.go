// Package ui renders the terminal presentation of the wallpaper studio:
// translated strings, language detection and theme-aware lipgloss styles.
package ui
