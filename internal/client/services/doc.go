// Package services contains the application services of the wallpaper
// client: preferences, session and history, the simulated credential
// directory and the image operations built on top of client.ImageClient.
//
// Stores absorb storage failures: they are logged and never returned, so a
// broken database degrades persistence without interrupting the REPL.
package services
