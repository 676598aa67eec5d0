package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	DefaultModel    = "gemini-2.5-flash-image"

	apiKeyHeader = "x-goog-api-key"

	// maxResponseSize bounds the response body; inline images are large.
	maxResponseSize = 64 << 20
)

// HTTPClient is the subset of *http.Client used by GeminiClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GeminiClient calls the generateContent method of the Gemini REST API.
type GeminiClient struct {
	endpoint string
	model    string
	apiKey   string
	client   HTTPClient
	log      logging.Logger
}

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithEndpoint overrides the API base URL.
func WithEndpoint(endpoint string) GeminiOption {
	return func(g *GeminiClient) {
		if endpoint != "" {
			g.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithModel overrides the model name.
func WithModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		if model != "" {
			g.model = model
		}
	}
}

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(c HTTPClient) GeminiOption {
	return func(g *GeminiClient) {
		if c != nil {
			g.client = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) GeminiOption {
	return func(g *GeminiClient) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGeminiClient builds a client for apiKey. An empty key is accepted; every
// call then fails with ErrMissingCredential.
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	g := &GeminiClient{
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		apiKey:   apiKey,
		client:   http.DefaultClient,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

func toGeminiParts(parts []Part) []geminiPart {
	out := make([]geminiPart, 0, len(parts))
	for _, p := range parts {
		if p.Image != nil {
			out = append(out, geminiPart{InlineData: &geminiInlineData{MIMEType: p.Image.MIMEType, Data: p.Image.Data}})
			continue
		}
		out = append(out, geminiPart{Text: p.Text})
	}
	return out
}

func (g *GeminiClient) url() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.endpoint, g.model)
}

// GenerateImage sends parts as a single user turn and returns the first inline
// image of the first candidate.
func (g *GeminiClient) GenerateImage(ctx context.Context, parts []Part) (models.Image, error) {
	if g.apiKey == "" {
		return models.Image{}, ErrMissingCredential
	}

	log := g.log.With("request_id", uuid.NewString(), "model", g.model)

	body, err := json.Marshal(geminiRequest{
		Contents:         []geminiContent{{Parts: toGeminiParts(parts)}},
		GenerationConfig: geminiGenConfig{ResponseModalities: []string{"IMAGE"}},
	})
	if err != nil {
		return models.Image{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(), bytes.NewReader(body))
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, g.apiKey)

	log.Debug(ctx, "sending generateContent request", "parts", len(parts))

	resp, err := g.client.Do(req)
	if err != nil {
		log.Warn(ctx, "generateContent request failed", "error", err)
		return models.Image{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(raw, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		log.Warn(ctx, "generateContent returned an error", "status", resp.StatusCode, "message", msg)
		return models.Image{}, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, msg)
	}

	img, err := parseImageResponse(raw)
	if err != nil {
		log.Warn(ctx, "generateContent returned no image", "error", err)
		return models.Image{}, err
	}

	log.Info(ctx, "image received", "mime", img.MIMEType, "bytes", img.Size())
	return img, nil
}

// parseImageResponse scans the first candidate's parts and returns the first
// inline image payload.
func parseImageResponse(raw []byte) (models.Image, error) {
	if !gjson.ValidBytes(raw) {
		return models.Image{}, fmt.Errorf("%w: invalid JSON response", ErrTransport)
	}

	res := gjson.ParseBytes(raw)
	for _, part := range res.Get("candidates.0.content.parts").Array() {
		inline := part.Get("inlineData")
		if !inline.Exists() {
			inline = part.Get("inline_data")
		}
		if !inline.Exists() {
			continue
		}

		data := inline.Get("data").String()
		if data == "" {
			continue
		}
		mimeType := inline.Get("mimeType").String()
		if mimeType == "" {
			mimeType = inline.Get("mime_type").String()
		}
		if mimeType == "" {
			mimeType = "image/png"
		}
		return models.Image{MIMEType: mimeType, Data: data}, nil
	}

	if reason := res.Get("promptFeedback.blockReason").String(); reason != "" {
		return models.Image{}, fmt.Errorf("%w (block reason: %s)", ErrNoImageReturned, reason)
	}
	if reason := res.Get("candidates.0.finishReason").String(); reason != "" && reason != "STOP" {
		return models.Image{}, fmt.Errorf("%w (finish reason: %s)", ErrNoImageReturned, reason)
	}
	return models.Image{}, ErrNoImageReturned
}
