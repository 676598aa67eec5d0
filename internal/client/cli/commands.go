package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/app"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/media"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/ui"
	"github.com/dmitrijs2005/aiwallpaper/internal/common"
)

const helpText = `Commands:
  signup | register          create an account and log in
  login | logout             switch identity
  mode generate|enhance      switch panel
  prompt <text>              set the prompt
  negative [text]            set or clear the negative prompt
  ratio 16:9|9:16|1:1|4:3    set the aspect ratio
  style <name>               Photorealistic, Digital Art, Anime, Synthwave
  generate | g               generate a wallpaper
  load <file>                load an image to enhance
  enhance                    enhance the loaded image
  upscale                    upscale the current image to 4K
  save [dir]                 write the current image to disk
  export                     upload the current image to object storage
  history | h                list saved prompts
  use <n>                    reuse history entry n
  theme [name]               list or set the theme
  lang [en|ar|ku]            set the interface language
  status                     show the current form
  exit | quit`

var errUsage = errors.New("invalid arguments")

func (a *App) usage(u string) error {
	return fmt.Errorf("%w: %s", errUsage, a.tr.T("usage", map[string]any{"usage": u}))
}

// requestContext bounds a remote call by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Help(ctx context.Context) error {
	a.println(a.render.Text(helpText))
	return nil
}

// readCredentials asks for username and password. The caller wipes the
// returned password.
func (a *App) readCredentials() (string, []byte, error) {
	username, err := GetSimpleText(a.reader, a.tr.T("auth_username_label", nil), a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := GetPassword(a.reader, a.tr.T("auth_password_label", nil), a.out)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}

func (a *App) Signup(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Signup(ctx, username, password); err != nil {
		return err
	}
	a.session.Login(ctx, username)
	a.println(a.render.Success(a.tr.T("auth_signup_done", map[string]any{"name": username})))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}
	a.session.Login(ctx, username)
	a.println(a.render.Success(a.tr.T("auth_login_done", map[string]any{"name": username})))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if _, ok := a.session.CurrentUser(); !ok {
		a.println(a.render.Muted(a.tr.T("auth_required", nil)))
		return nil
	}
	a.session.Logout(ctx)
	a.println(a.render.Success(a.tr.T("auth_logout_done", nil)))
	return nil
}

func (a *App) SetMode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("mode generate|enhance")
	}
	mode := app.Mode(strings.ToLower(args[0]))
	if err := a.studio.SetMode(mode); err != nil {
		return err
	}
	key := "tab_generate"
	if mode == app.ModeEnhance {
		key = "tab_enhance"
	}
	a.println(a.render.Accent(a.tr.T("mode_changed", map[string]any{"mode": a.tr.T(key, nil)})))
	return nil
}

func (a *App) SetPrompt(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage("prompt <text>")
	}
	a.studio.SetPrompt(strings.Join(args, " "))
	a.valueSet("prompt_label")
	return nil
}

func (a *App) SetNegative(ctx context.Context, args []string) error {
	a.studio.SetNegativePrompt(strings.Join(args, " "))
	a.valueSet("negative_prompt_label")
	return nil
}

func (a *App) SetRatio(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("ratio " + strings.Join(models.AspectRatios, "|"))
	}
	if err := a.studio.SetAspectRatio(args[0]); err != nil {
		return err
	}
	a.valueSet("aspect_ratio_label")
	return nil
}

func (a *App) SetStyle(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	for _, s := range models.Styles {
		if strings.EqualFold(s, name) {
			name = s
			break
		}
	}
	if name == "" {
		return a.usage("style " + strings.Join(models.Styles, "|"))
	}
	if err := a.studio.SetStyle(name); err != nil {
		return err
	}
	a.valueSet("style_preset_label")
	return nil
}

func (a *App) valueSet(labelKey string) {
	a.println(a.render.Muted(a.tr.T("value_set", map[string]any{"field": a.tr.T(labelKey, nil)})))
}

func (a *App) Generate(ctx context.Context) error {
	a.println(a.render.Muted(a.tr.T("button_generating", nil)))
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.studio.Generate(rctx); err != nil {
		return err
	}
	return a.printImage()
}

func (a *App) Load(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage("load <file>")
	}
	path := strings.Join(args, " ")
	img, err := media.LoadImageFile(path)
	if err != nil {
		return err
	}
	if a.studio.State().Mode != app.ModeEnhance {
		if err := a.studio.SetMode(app.ModeEnhance); err != nil {
			return err
		}
	}
	a.studio.SetSourceImage(img)
	a.println(a.render.Success(a.tr.T("upload_ready", map[string]any{
		"file": filepath.Base(path),
		"size": ui.Size(img.Size()),
	})))
	return nil
}

func (a *App) Enhance(ctx context.Context) error {
	a.println(a.render.Muted(a.tr.T("button_enhancing", nil)))
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.studio.Enhance(rctx); err != nil {
		return err
	}
	return a.printImage()
}

func (a *App) Upscale(ctx context.Context) error {
	a.println(a.render.Muted(a.tr.T("upscaling_message", nil)))
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.studio.Upscale(rctx); err != nil {
		return err
	}
	if err := a.printImage(); err != nil {
		return err
	}
	a.println(a.render.Accent(a.tr.T("button_upscaled", nil)))
	return nil
}

func (a *App) printImage() error {
	st := a.studio.State()
	if st.Image == nil {
		return errors.New(a.tr.T("no_image", nil))
	}
	a.println(a.render.ImageSummary(*st.Image))
	return nil
}

func (a *App) currentImage() (models.Image, string, error) {
	st := a.studio.State()
	if st.Image == nil {
		return models.Image{}, "", errors.New(a.tr.T("no_image", nil))
	}
	return *st.Image, st.Request.Prompt, nil
}

func (a *App) Save(ctx context.Context, args []string) error {
	img, prompt, err := a.currentImage()
	if err != nil {
		return err
	}
	dir := a.config.ExportDir
	if len(args) > 0 {
		dir = strings.Join(args, " ")
	}
	path, err := media.SaveToDir(dir, prompt, img)
	if err != nil {
		return err
	}
	a.println(a.render.Success(a.tr.T("image_saved", map[string]any{"path": path})))
	return nil
}

func (a *App) Export(ctx context.Context) error {
	if a.exporter == nil {
		a.println(a.render.Muted(a.tr.T("export_disabled", nil)))
		return nil
	}
	img, prompt, err := a.currentImage()
	if err != nil {
		return err
	}

	owner := ""
	if u, ok := a.session.CurrentUser(); ok {
		owner = u.Username
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	location, err := a.exporter.Export(rctx, owner, prompt, img)
	if errors.Is(err, media.ErrExportDisabled) {
		a.println(a.render.Muted(a.tr.T("export_disabled", nil)))
		return nil
	}
	if err != nil {
		return err
	}
	a.println(a.render.Success(a.tr.T("image_exported", map[string]any{"location": location})))
	return nil
}

func (a *App) History(ctx context.Context) error {
	if _, ok := a.session.CurrentUser(); !ok {
		a.println(a.render.Muted(a.tr.T("history_auth_prompt", nil)))
		return nil
	}
	a.println(a.render.History(a.session.History()))
	return nil
}

func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("use <n>")
	}
	if _, ok := a.session.CurrentUser(); !ok {
		a.println(a.render.Muted(a.tr.T("history_auth_prompt", nil)))
		return nil
	}
	n, err := strconv.Atoi(args[0])
	history := a.session.History()
	if err != nil || n < 1 || n > len(history) {
		return a.usage(fmt.Sprintf("use <1..%d>", len(history)))
	}

	e := history[n-1]
	if err := a.studio.SelectHistory(e); err != nil {
		return err
	}
	a.valueSet("prompt_label")
	return nil
}

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.render.ThemeList())
		return nil
	}
	t, err := models.ParseTheme(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if err := a.prefs.SetTheme(ctx, t); err != nil {
		return err
	}
	a.println(a.render.Accent(a.tr.T("theme_changed", map[string]any{"theme": a.tr.T(t.NameKey(), nil)})))
	return nil
}

func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) != 1 {
		codes := make([]string, 0, len(models.Languages))
		for _, l := range models.Languages {
			codes = append(codes, string(l))
		}
		return a.usage("lang " + strings.Join(codes, "|"))
	}
	l, err := models.ParseLanguage(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if err := a.prefs.SetLanguage(ctx, l); err != nil {
		return err
	}
	a.tr.SetLanguage(l)
	a.println(a.render.Accent(a.tr.T("language_changed", map[string]any{"lang": string(l)})))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st := a.studio.State()
	pref := a.prefs.Get()

	lines := []string{
		fmt.Sprintf("%s: %s", a.tr.T("prompt_label", nil), st.Request.Prompt),
		fmt.Sprintf("%s: %s", a.tr.T("negative_prompt_label", nil), st.Request.NegativePrompt),
		fmt.Sprintf("%s: %s", a.tr.T("aspect_ratio_label", nil), st.Request.AspectRatio),
		fmt.Sprintf("%s: %s", a.tr.T("style_preset_label", nil), st.Request.Style),
		fmt.Sprintf("%s: %s (%s)", a.tr.T("theme_change_label", nil), a.tr.T(pref.Theme.NameKey(), nil), pref.Language.Direction()),
	}
	if st.SourceImage != nil {
		lines = append(lines, "source: "+st.SourceImage.MIMEType+", "+ui.Size(st.SourceImage.Size()))
	}
	if st.Image != nil {
		lines = append(lines, "image: "+st.Image.MIMEType+", "+ui.Size(st.Image.Size()))
	}
	if st.Error != "" {
		lines = append(lines, a.render.Error(a.tr.T("error_title", nil)+": "+st.Error))
	}
	a.println(a.render.Box(strings.Join(lines, "\n")))
	return nil
}
