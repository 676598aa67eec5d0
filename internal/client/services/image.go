package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/client"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

const (
	upscaleInstruction = "Upscale this image to a very high resolution (e.g., 4K), adding intricate details and enhancing realism while preserving the original composition and artistic style. For context, the original prompt was: \"%s\""
	enhanceInstruction = "Enhance the quality of this image. Improve sharpness, clarity, color, and lighting. Fix any compression artifacts or noise. Make the image look professional and high-resolution, but do not change the subject, composition, or artistic style of the original image."
)

// ImageService turns wallpaper intents into image-capability requests.
type ImageService struct {
	client client.ImageClient
	log    logging.Logger
}

func NewImageService(c client.ImageClient, log logging.Logger) *ImageService {
	return &ImageService{client: c, log: log}
}

// BuildGeneratePrompt renders the text-to-image instruction.
func BuildGeneratePrompt(prompt, negativePrompt, aspectRatio, style string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s wallpaper of %s. The image must be high-resolution, ultra-detailed, and suitable for a desktop background. The aspect ratio must be exactly %s.",
		style, strings.TrimSpace(prompt), aspectRatio)
	if aspectRatio == models.AspectWidescreen {
		b.WriteString(" The final image resolution MUST be 1920x1080 pixels.")
	}
	if neg := strings.TrimSpace(negativePrompt); neg != "" {
		fmt.Fprintf(&b, " Do not include the following: %s.", neg)
	}
	return b.String()
}

// BuildUpscalePrompt renders the upscale instruction for originalPrompt.
func BuildUpscalePrompt(originalPrompt string) string {
	return fmt.Sprintf(upscaleInstruction, originalPrompt)
}

func wrap(op string, err error) error {
	if errors.Is(err, client.ErrMissingCredential) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// GenerateWallpaper produces a wallpaper from a text prompt.
func (s *ImageService) GenerateWallpaper(ctx context.Context, prompt, negativePrompt, aspectRatio, style string) (models.Image, error) {
	text := BuildGeneratePrompt(prompt, negativePrompt, aspectRatio, style)
	s.log.Debug(ctx, "generating wallpaper", "ratio", aspectRatio, "style", style)

	img, err := s.client.GenerateImage(ctx, []client.Part{client.TextPart(text)})
	if err != nil {
		return models.Image{}, wrap("failed to generate wallpaper", err)
	}
	return img, nil
}

// UpscaleWallpaper asks for a higher-resolution rendition of imageRef.
func (s *ImageService) UpscaleWallpaper(ctx context.Context, imageRef, originalPrompt string) (models.Image, error) {
	src, err := models.ParseDataURI(imageRef)
	if err != nil {
		return models.Image{}, wrap("failed to upscale wallpaper", err)
	}

	img, err := s.client.GenerateImage(ctx, []client.Part{
		client.ImagePart(src),
		client.TextPart(BuildUpscalePrompt(originalPrompt)),
	})
	if err != nil {
		return models.Image{}, wrap("failed to upscale wallpaper", err)
	}
	return img, nil
}

// EnhanceImage improves the quality of imageRef without changing its content.
func (s *ImageService) EnhanceImage(ctx context.Context, imageRef string) (models.Image, error) {
	src, err := models.ParseDataURI(imageRef)
	if err != nil {
		return models.Image{}, wrap("failed to enhance image", err)
	}

	img, err := s.client.GenerateImage(ctx, []client.Part{
		client.ImagePart(src),
		client.TextPart(enhanceInstruction),
	})
	if err != nil {
		return models.Image{}, wrap("failed to enhance image", err)
	}
	return img, nil
}
