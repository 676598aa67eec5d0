package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dustin/go-humanize"
)

type styles struct {
	title   lipgloss.Style
	accent  lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	box     lipgloss.Style
}

// Renderer styles terminal output for the active theme.
type Renderer struct {
	r  *lipgloss.Renderer
	tr *Translator

	mu     sync.RWMutex
	theme  models.Theme
	styles styles
}

// NewRenderer builds a renderer whose colour profile is detected from w.
func NewRenderer(w io.Writer, tr *Translator, theme models.Theme) *Renderer {
	r := &Renderer{r: lipgloss.NewRenderer(w), tr: tr}
	r.SetTheme(theme)
	return r
}

// SetTheme swaps the palette. It is registered as a theme-change observer.
func (r *Renderer) SetTheme(t models.Theme) {
	p := PaletteFor(t)
	s := styles{
		title:   r.r.NewStyle().Bold(true).Foreground(p.Accent),
		accent:  r.r.NewStyle().Foreground(p.Accent),
		text:    r.r.NewStyle().Foreground(p.Text),
		muted:   r.r.NewStyle().Foreground(p.Muted),
		err:     r.r.NewStyle().Foreground(p.Error),
		success: r.r.NewStyle().Foreground(p.Success),
		box:     r.r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = t
	r.styles = s
}

func (r *Renderer) Theme() models.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

func (r *Renderer) current() styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles
}

// T is a shorthand for the translator lookup.
func (r *Renderer) T(key string, replacements map[string]any) string {
	return r.tr.T(key, replacements)
}

func (r *Renderer) Title(s string) string   { return r.current().title.Render(s) }
func (r *Renderer) Accent(s string) string  { return r.current().accent.Render(s) }
func (r *Renderer) Text(s string) string    { return r.current().text.Render(s) }
func (r *Renderer) Muted(s string) string   { return r.current().muted.Render(s) }
func (r *Renderer) Error(s string) string   { return r.current().err.Render(s) }
func (r *Renderer) Success(s string) string { return r.current().success.Render(s) }
func (r *Renderer) Box(s string) string     { return r.current().box.Render(s) }

// Banner is the start-up header.
func (r *Renderer) Banner() string {
	return r.Box(r.Title(r.T("app_title", nil)) + "\n" + r.Muted(r.T("app_subtitle", nil)) + "\n" + r.Muted(r.T("model_name", nil)))
}

// ImageSummary describes an image payload, e.g. "image/png, 1.2 MB".
func (r *Renderer) ImageSummary(img models.Image) string {
	return r.Success(r.T("image_ready", map[string]any{
		"mime": img.MIMEType,
		"size": humanize.Bytes(uint64(img.Size())),
	}))
}

// Size formats a byte count for display.
func Size(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// History renders a numbered history list, most recent first.
func (r *Renderer) History(entries []models.HistoryEntry) string {
	if len(entries) == 0 {
		return r.Muted(r.T("history_empty", nil))
	}

	var b strings.Builder
	b.WriteString(r.Title(r.T("history_title", nil)))
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%s %s", r.Accent(fmt.Sprintf("%2d.", i+1)), r.Text(e.Prompt))
		if e.NegativePrompt != "" {
			fmt.Fprintf(&b, "\n    %s", r.Muted(r.T("history_avoid_label", nil)+": "+e.NegativePrompt))
		}
	}
	return b.String()
}

// ThemeList renders every theme, marking the active one.
func (r *Renderer) ThemeList() string {
	active := r.Theme()
	lines := make([]string, 0, len(models.Themes))
	for _, t := range models.Themes {
		marker := "  "
		if t == active {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-10s %s", marker, string(t), r.T(t.NameKey(), nil))
		if t == active {
			line = r.Accent(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
