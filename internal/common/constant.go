// Package common contains constants and helpers shared by the AI wallpaper
// client packages.
package common

// AppName is used for runtime directories and default file names.
const AppName = "aiwallpaper"

// EnvPrefix is the prefix viper uses when binding environment variables,
// e.g. AIWALLPAPER_MODEL.
const EnvPrefix = "AIWALLPAPER"
