package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

// Mode selects the input panel of the studio.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeEnhance  Mode = "enhance"
)

var (
	ErrEmptyPrompt       = errors.New("prompt is empty")
	ErrBusy              = errors.New("another request is in progress")
	ErrNoSourceImage     = errors.New("no source image loaded")
	ErrNoImage           = errors.New("no image to upscale")
	ErrUpscaleInProgress = errors.New("upscale already in progress")
	ErrAlreadyUpscaled   = errors.New("image is already upscaled")
	ErrUnknownMode       = errors.New("unknown mode")
	// ErrSuperseded is returned when the state was reset while a request was
	// in flight; its result is dropped.
	ErrSuperseded = errors.New("request superseded")
)

// ImageService is the remote image capability used by the controller.
type ImageService interface {
	GenerateWallpaper(ctx context.Context, prompt, negativePrompt, aspectRatio, style string) (models.Image, error)
	UpscaleWallpaper(ctx context.Context, imageRef, originalPrompt string) (models.Image, error)
	EnhanceImage(ctx context.Context, imageRef string) (models.Image, error)
}

// HistoryRecorder stores successful prompts of the active identity.
type HistoryRecorder interface {
	CurrentUser() (models.Identity, bool)
	AddHistoryItem(ctx context.Context, e models.HistoryEntry)
}

// State is a snapshot of the controller.
type State struct {
	Mode        Mode
	Request     models.GenerationRequest
	SourceImage *models.Image
	Image       *models.Image
	Error       string
	Loading     bool
	Upscaling   bool
	Upscaled    bool
}

// Controller serializes studio transitions. Remote calls run outside the lock.
type Controller struct {
	images  ImageService
	history HistoryRecorder
	log     logging.Logger

	mu    sync.Mutex
	state State
	// epoch is bumped by every reset so late responses can be recognized.
	epoch uint64
}

func NewController(images ImageService, history HistoryRecorder, log logging.Logger) *Controller {
	return &Controller{
		images:  images,
		history: history,
		log:     log,
		state: State{
			Mode:    ModeGenerate,
			Request: models.DefaultGenerationRequest(),
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Image != nil {
		img := *s.Image
		s.Image = &img
	}
	if s.SourceImage != nil {
		img := *s.SourceImage
		s.SourceImage = &img
	}
	return s
}

// resetLocked clears the result area. c.mu must be held.
func (c *Controller) resetLocked() {
	c.epoch++
	c.state.Error = ""
	c.state.Image = nil
	c.state.Upscaled = false
}

func (c *Controller) SetPrompt(prompt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Request.Prompt = prompt
}

func (c *Controller) SetNegativePrompt(negative string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Request.NegativePrompt = negative
}

func (c *Controller) SetAspectRatio(ratio string) error {
	if err := models.ValidateAspectRatio(ratio); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Request.AspectRatio = ratio
	return nil
}

func (c *Controller) SetStyle(style string) error {
	if err := models.ValidateStyle(style); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Request.Style = style
	return nil
}

// SetSourceImage sets the input of enhance mode.
func (c *Controller) SetSourceImage(img models.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SourceImage = &img
}

// SetMode switches panels and clears the result area and the source image.
func (c *Controller) SetMode(mode Mode) error {
	if mode != ModeGenerate && mode != ModeEnhance {
		return ErrUnknownMode
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Mode = mode
	c.state.SourceImage = nil
	c.resetLocked()
	return nil
}

// SelectHistory loads a saved prompt pair into the generate form.
func (c *Controller) SelectHistory(e models.HistoryEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return ErrBusy
	}
	c.state.Request.Prompt = e.Prompt
	c.state.Request.NegativePrompt = e.NegativePrompt
	c.state.Mode = ModeGenerate
	c.resetLocked()
	return nil
}

// finish applies the outcome of a generate or enhance call started at epoch.
func (c *Controller) finish(ctx context.Context, epoch uint64, img models.Image, err error, op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Loading = false
	if epoch != c.epoch {
		c.log.Debug(ctx, "dropping superseded response", "op", op)
		return ErrSuperseded
	}
	if err != nil {
		c.state.Error = err.Error()
		c.log.Warn(ctx, "image request failed", "op", op, "error", err)
		return err
	}
	c.state.Image = &img
	return nil
}

// Generate requests a wallpaper for the current form values. On success the
// prompt pair is recorded for the active identity.
func (c *Controller) Generate(ctx context.Context) error {
	c.mu.Lock()
	if strings.TrimSpace(c.state.Request.Prompt) == "" {
		c.mu.Unlock()
		return ErrEmptyPrompt
	}
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state.Loading = true
	c.resetLocked()
	epoch := c.epoch
	req := c.state.Request
	c.mu.Unlock()

	img, err := c.images.GenerateWallpaper(ctx, req.Prompt, req.NegativePrompt, req.AspectRatio, req.Style)
	if err := c.finish(ctx, epoch, img, err, "generate"); err != nil {
		return err
	}

	if _, ok := c.history.CurrentUser(); ok {
		c.history.AddHistoryItem(ctx, models.HistoryEntry{Prompt: req.Prompt, NegativePrompt: req.NegativePrompt})
	}
	return nil
}

// Enhance improves the loaded source image. Results are never recorded.
func (c *Controller) Enhance(ctx context.Context) error {
	c.mu.Lock()
	if c.state.SourceImage == nil {
		c.mu.Unlock()
		return ErrNoSourceImage
	}
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state.Loading = true
	c.resetLocked()
	epoch := c.epoch
	ref := c.state.SourceImage.DataURI()
	c.mu.Unlock()

	img, err := c.images.EnhanceImage(ctx, ref)
	return c.finish(ctx, epoch, img, err, "enhance")
}

// Upscale replaces the displayed image with a higher-resolution rendition.
// The image can be upscaled once.
func (c *Controller) Upscale(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.state.Image == nil:
		c.mu.Unlock()
		return ErrNoImage
	case c.state.Upscaling:
		c.mu.Unlock()
		return ErrUpscaleInProgress
	case c.state.Upscaled:
		c.mu.Unlock()
		return ErrAlreadyUpscaled
	}
	c.state.Upscaling = true
	c.state.Error = ""
	epoch := c.epoch
	ref := c.state.Image.DataURI()
	prompt := c.state.Request.Prompt
	c.mu.Unlock()

	img, err := c.images.UpscaleWallpaper(ctx, ref, prompt)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Upscaling = false
	if epoch != c.epoch {
		c.log.Debug(ctx, "dropping superseded response", "op", "upscale")
		return ErrSuperseded
	}
	if err != nil {
		c.state.Error = err.Error()
		c.log.Warn(ctx, "image request failed", "op", "upscale", "error", err)
		return err
	}
	c.state.Image = &img
	c.state.Upscaled = true
	return nil
}
