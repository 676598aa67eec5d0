// Package models defines the client-side data types of the wallpaper studio:
// identities, prompt history, preferences, generation requests and image
// payloads.
package models
