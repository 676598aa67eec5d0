package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type recordedRequest struct {
	Path   string
	APIKey string
	Body   []byte
}

func newGeminiServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var calls []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recordedRequest{Path: r.URL.Path, APIKey: r.Header.Get("x-goog-api-key"), Body: b})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

const imageResponse = `{
  "candidates": [{
    "content": {"parts": [
      {"text": "here you go"},
      {"inlineData": {"mimeType": "image/png", "data": "iVBORw0KGgo="}},
      {"inlineData": {"mimeType": "image/jpeg", "data": "SECOND"}}
    ]},
    "finishReason": "STOP"
  }]
}`

func TestGeminiClient_GenerateImage_OK(t *testing.T) {
	srv, calls := newGeminiServer(t, http.StatusOK, imageResponse)
	c := NewGeminiClient("secret", WithEndpoint(srv.URL+"/"), WithModel("test-model"), WithHTTPClient(srv.Client()))

	img, err := c.GenerateImage(context.Background(), []Part{
		ImagePart(models.Image{MIMEType: "image/webp", Data: "SRC"}),
		TextPart("make it nicer"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Image{MIMEType: "image/png", Data: "iVBORw0KGgo="}, img)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, "/v1beta/models/test-model:generateContent", got.Path)
	assert.Equal(t, "secret", got.APIKey)

	body := gjson.ParseBytes(got.Body)
	assert.Equal(t, "image/webp", body.Get("contents.0.parts.0.inlineData.mimeType").String())
	assert.Equal(t, "SRC", body.Get("contents.0.parts.0.inlineData.data").String())
	assert.Equal(t, "make it nicer", body.Get("contents.0.parts.1.text").String())
	assert.Equal(t, "IMAGE", body.Get("generationConfig.responseModalities.0").String())
}

func TestGeminiClient_MissingCredential_NoNetwork(t *testing.T) {
	srv, calls := newGeminiServer(t, http.StatusOK, imageResponse)
	c := NewGeminiClient("", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Empty(t, *calls)
}

func TestGeminiClient_SnakeCaseInlineData(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"inline_data":{"mime_type":"image/jpeg","data":"QUJD"}}]}}]}`)
	c := NewGeminiClient("k", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	img, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Equal(t, "QUJD", img.Data)
}

func TestGeminiClient_NoImage(t *testing.T) {
	cases := map[string]struct {
		body    string
		contain string
	}{
		"text only":   {body: `{"candidates":[{"content":{"parts":[{"text":"sorry"}]},"finishReason":"STOP"}]}`},
		"no parts":    {body: `{"candidates":[]}`},
		"blocked":     {body: `{"promptFeedback":{"blockReason":"SAFETY"}}`, contain: "SAFETY"},
		"finish":      {body: `{"candidates":[{"finishReason":"IMAGE_SAFETY"}]}`, contain: "IMAGE_SAFETY"},
		"empty image": {body: `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":""}}]}}]}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newGeminiServer(t, http.StatusOK, tc.body)
			c := NewGeminiClient("k", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

			_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
			require.ErrorIs(t, err, ErrNoImageReturned)
			if tc.contain != "" {
				assert.Contains(t, err.Error(), tc.contain)
			}
		})
	}
}

func TestGeminiClient_HTTPError(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`)
	c := NewGeminiClient("bad", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiClient_HTTPErrorWithoutBody(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusInternalServerError, ``)
	c := NewGeminiClient("k", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "Internal Server Error")
}

func TestGeminiClient_InvalidJSON(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, `not json`)
	c := NewGeminiClient("k", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.ErrorIs(t, err, ErrTransport)
}

type fakeHTTPClient struct {
	err   error
	calls int
}

func (f *fakeHTTPClient) Do(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, f.err
}

func TestGeminiClient_NetworkError(t *testing.T) {
	boom := errors.New("connection refused")
	hc := &fakeHTTPClient{err: boom}
	c := NewGeminiClient("k", WithHTTPClient(hc))

	_, err := c.GenerateImage(context.Background(), []Part{TextPart("x")})
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, hc.calls)
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	c := NewGeminiClient("k", WithEndpoint(""), WithModel(""), WithHTTPClient(nil), WithLogger(nil))
	assert.Equal(t, DefaultEndpoint+"/v1beta/models/"+DefaultModel+":generateContent", c.url())
}
