// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the remote image capability (see the
//     ImageClient interface): send a list of content parts, receive one image.
//  2. A concrete implementation over the Gemini generateContent REST endpoint
//     (see GeminiClient). Responses are scanned with gjson for the first
//     inline image part.
//  3. Local persistence bootstrap utilities (InitDatabase, OpenSessionStore,
//     RunMigrations) wiring SQLite databases and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrMissingCredential, ErrNoImageReturned, ErrTransport.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
