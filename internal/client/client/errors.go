package client

import "errors"

var (
	ErrMissingCredential = errors.New("API key is not configured")
	ErrNoImageReturned   = errors.New("no image was returned, the request may have been blocked")
	ErrTransport         = errors.New("image service request failed")
)
