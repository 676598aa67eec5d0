package models

import "errors"

var (
	ErrUnknownAspectRatio = errors.New("unknown aspect ratio")
	ErrUnknownStyle       = errors.New("unknown style")
)

// Aspect ratios offered for text-to-image generation.
const (
	AspectWidescreen = "16:9"
	AspectPortrait   = "9:16"
	AspectSquare     = "1:1"
	AspectClassic    = "4:3"
)

// Style presets offered for text-to-image generation.
const (
	StylePhotorealistic = "Photorealistic"
	StyleDigitalArt     = "Digital Art"
	StyleAnime          = "Anime"
	StyleSynthwave      = "Synthwave"
)

var (
	AspectRatios = []string{AspectWidescreen, AspectPortrait, AspectSquare, AspectClassic}
	Styles       = []string{StylePhotorealistic, StyleDigitalArt, StyleAnime, StyleSynthwave}
)

// DefaultPrompt seeds the prompt field on start.
const DefaultPrompt = "A synthwave sunset over a vast digital ocean, 4K, detailed"

// GenerationRequest describes one text-to-image call. It is never persisted.
type GenerationRequest struct {
	Prompt         string
	NegativePrompt string
	AspectRatio    string
	Style          string
}

// DefaultGenerationRequest returns the initial form values.
func DefaultGenerationRequest() GenerationRequest {
	return GenerationRequest{
		Prompt:      DefaultPrompt,
		AspectRatio: AspectWidescreen,
		Style:       StyleDigitalArt,
	}
}

// ValidateAspectRatio returns ErrUnknownAspectRatio for unsupported ratios.
func ValidateAspectRatio(r string) error {
	for _, known := range AspectRatios {
		if r == known {
			return nil
		}
	}
	return ErrUnknownAspectRatio
}

// ValidateStyle returns ErrUnknownStyle for unsupported presets.
func ValidateStyle(s string) error {
	for _, known := range Styles {
		if s == known {
			return nil
		}
	}
	return ErrUnknownStyle
}
