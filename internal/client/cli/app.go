package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/app"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/client"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/config"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/services"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/ui"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

// Exporter publishes an image outside the local machine.
type Exporter interface {
	Export(ctx context.Context, owner, prompt string, img models.Image) (string, error)
}

// Deps are the collaborators of an App. Zero values are replaced by
// in-memory or no-op defaults.
type Deps struct {
	Profile  kv.Repository
	Session  kv.Repository
	Images   client.ImageClient
	Exporter Exporter
	Log      logging.Logger
	In       io.Reader
	Out      io.Writer
	Getenv   func(string) string
}

type App struct {
	config *config.Config
	log    logging.Logger

	prefs    *services.PreferenceService
	session  *services.SessionService
	auth     *services.AuthService
	studio   *app.Controller
	exporter Exporter

	tr     *ui.Translator
	render *ui.Renderer

	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// New wires an App from already opened dependencies.
func New(ctx context.Context, cfg *config.Config, d Deps) *App {
	if d.Profile == nil {
		d.Profile = kv.NewMemoryRepository()
	}
	if d.Session == nil {
		d.Session = kv.NewMemoryRepository()
	}
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Getenv == nil {
		d.Getenv = os.Getenv
	}
	if d.Images == nil {
		d.Images = client.NewGeminiClient("", client.WithLogger(d.Log))
	}

	prefs := services.NewPreferenceService(ctx, d.Profile, ui.DetectLanguage(d.Getenv), d.Log)
	session := services.NewSessionService(ctx, d.Session, d.Profile, d.Log)
	tr := ui.NewTranslator(prefs.Get().Language)
	render := ui.NewRenderer(d.Out, tr, prefs.Get().Theme)
	prefs.OnThemeChange(render.SetTheme)

	return &App{
		config:   cfg,
		log:      d.Log,
		prefs:    prefs,
		session:  session,
		auth:     services.NewAuthService(d.Profile, cfg.AuthLatency, d.Log),
		studio:   app.NewController(services.NewImageService(d.Images, d.Log), session, d.Log),
		exporter: d.Exporter,
		tr:       tr,
		render:   render,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
	}
}

// NewApp opens the profile and session databases described by cfg and wires
// the Gemini client. exporter may be nil.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, exporter Exporter) (*App, error) {
	profile, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	session, closeSession, err := client.OpenSessionStore(ctx, cfg.SessionPath)
	if err != nil {
		log.Warn(ctx, "session store unavailable, keeping session in memory", "path", cfg.SessionPath, "error", err)
		session, closeSession = kv.NewMemoryRepository(), func() error { return nil }
	}

	images := client.NewGeminiClient(cfg.APIKey,
		client.WithEndpoint(cfg.Endpoint),
		client.WithModel(cfg.Model),
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		client.WithLogger(log),
	)

	a := New(ctx, cfg, Deps{
		Profile:  profile,
		Session:  session,
		Images:   images,
		Exporter: exporter,
		Log:      log,
	})
	a.closers = append(a.closers, profile.DB().Close, closeSession)
	return a, nil
}

// Close releases the databases opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run prints the banner and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.println(a.render.Banner())
	if u, ok := a.session.CurrentUser(); ok {
		a.println(a.render.Accent(a.tr.T("welcome_user", map[string]any{"name": u.Username})))
	}
	if a.config.APIKey == "" {
		a.println(a.render.Error(client.ErrMissingCredential.Error() + " (set GEMINI_API_KEY)"))
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// getStatus renders the prompt status, e.g. "(alice generate generating)".
func (a *App) getStatus() string {
	parts := make([]string, 0, 3)
	if u, ok := a.session.CurrentUser(); ok {
		parts = append(parts, u.Username)
	} else {
		parts = append(parts, a.tr.T("status_anonymous", nil))
	}

	st := a.studio.State()
	parts = append(parts, string(st.Mode))
	switch {
	case st.Loading:
		parts = append(parts, "busy")
	case st.Upscaling:
		parts = append(parts, "upscaling")
	case st.Upscaled:
		parts = append(parts, "4k")
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Report prints a command error in the result area style.
func (a *App) Report(err error) {
	a.println(a.render.Error(a.tr.T("error_title", nil) + ": " + err.Error()))
}

func (a *App) Unknown(cmd string) {
	a.println(a.render.Muted(a.tr.T("unknown_command", map[string]any{"cmd": cmd})))
}
