package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/filex"
	"github.com/gabriel-vasile/mimetype"
)

// ErrNotAnImage is returned when a file's content is not an image.
var ErrNotAnImage = errors.New("file is not an image")

const (
	fileNamePromptLength = 50
	fileNameSuffix       = "_wallpaper"
	defaultExtension     = ".png"
)

// LoadImageFile reads path and returns it as an image payload. The type is
// detected from the content, not the extension.
func LoadImageFile(path string) (models.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Image{}, fmt.Errorf("read image file: %w", err)
	}

	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		return models.Image{}, fmt.Errorf("%w: %s is %s", ErrNotAnImage, filepath.Base(path), mt.String())
	}

	return models.NewImage(mt.String(), raw), nil
}

// FileName derives a download name from the prompt: its first 50 characters
// with every non-alphanumeric replaced by '_', lower-cased, plus
// "_wallpaper" and an extension matching mimeType.
func FileName(prompt, mimeType string) string {
	if utf8.RuneCountInString(prompt) > fileNamePromptLength {
		prompt = string([]rune(prompt)[:fileNamePromptLength])
	}

	var b strings.Builder
	for _, r := range prompt {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}

	return b.String() + fileNameSuffix + extension(mimeType)
}

func extension(mimeType string) string {
	if mt := mimetype.Lookup(mimeType); mt != nil && mt.Extension() != "" {
		return mt.Extension()
	}
	return defaultExtension
}

// SaveToDir writes img into dir under FileName(prompt). The directory is
// created when missing. It returns the absolute path of the written file.
func SaveToDir(dir, prompt string, img models.Image) (string, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("prepare export dir: %w", err)
	}

	raw, err := img.Bytes()
	if err != nil {
		return "", err
	}

	path := filepath.Join(abs, FileName(prompt, img.MIMEType))
	if err := os.WriteFile(path, raw, 0o640); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
