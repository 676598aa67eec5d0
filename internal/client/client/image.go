package client

import (
	"context"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
)

// Part is one element of a multimodal request: either text or an inline image.
type Part struct {
	Text  string
	Image *models.Image
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart builds an inline image part.
func ImagePart(img models.Image) Part {
	return Part{Image: &img}
}

// ImageClient sends one multimodal request and returns the first image of the
// response.
type ImageClient interface {
	GenerateImage(ctx context.Context, parts []Part) (models.Image, error)
}
