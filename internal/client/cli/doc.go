// Package cli provides the interactive wallpaper studio command-line client.
//
// It wires configuration, local storage, the image service and an
// interactive REPL. Typical flow: restore the session, set a prompt,
// generate, optionally upscale, then save or export the result.
//
// Key features:
//   - Signup / Login / Logout against the local credential directory
//   - Generate wallpapers from a prompt, enhance a loaded image, upscale once
//   - Prompt history per user, reusable with "use <n>"
//   - Themes and UI languages that persist across runs
//   - Save to disk or export to S3-compatible storage
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
