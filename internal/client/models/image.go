package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

// ErrMalformedImageReference is returned for strings that are not of the form
// "data:<mimeType>;base64,<data>".
var ErrMalformedImageReference = errors.New("malformed image reference")

// Image is a mime-typed, base64-encoded image payload.
type Image struct {
	MIMEType string
	Data     string
}

// DataURI renders the image as a self-describing data reference.
func (img Image) DataURI() string {
	return "data:" + img.MIMEType + ";base64," + img.Data
}

// Bytes decodes the base64 payload.
func (img Image) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return b, nil
}

// Size is the decoded payload size estimated from the base64 length.
func (img Image) Size() int {
	return base64.StdEncoding.DecodedLen(len(img.Data)) - strings.Count(img.Data, "=")
}

// NewImage base64-encodes raw bytes.
func NewImage(mimeType string, raw []byte) Image {
	return Image{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(raw)}
}

// ParseDataURI splits a data reference into mime type and payload.
//
// The reference must contain exactly one comma. The metadata segment must
// start with "data:" and hold a parseable media type before any ';' parameter.
// The payload is returned as is, without decoding.
func ParseDataURI(ref string) (Image, error) {
	parts := strings.Split(ref, ",")
	if len(parts) != 2 {
		return Image{}, fmt.Errorf("%w: expected metadata,payload", ErrMalformedImageReference)
	}

	meta, data := parts[0], parts[1]
	rest, ok := strings.CutPrefix(meta, "data:")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing data: prefix", ErrMalformedImageReference)
	}

	mimeType, _, _ := strings.Cut(rest, ";")
	if mimeType == "" || data == "" {
		return Image{}, fmt.Errorf("%w: empty mime type or payload", ErrMalformedImageReference)
	}
	if mt, _, err := mime.ParseMediaType(mimeType); err != nil || !strings.Contains(mt, "/") {
		return Image{}, fmt.Errorf("%w: bad mime type %q", ErrMalformedImageReference, mimeType)
	}

	return Image{MIMEType: mimeType, Data: data}, nil
}
