// Package config loads runtime configuration for the wallpaper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables with the AIWALLPAPER_ prefix. The API key is also
//     read from GEMINI_API_KEY and API_KEY.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   profile database path
//	-s string   session database path
//	-m string   Gemini model name
//	-o string   default export directory
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations are strings like "2m" or "500ms":
//
//	{
//	  "database_path": "aiwallpaper.db",
//	  "api_key": "...",
//	  "model": "gemini-2.5-flash-image",
//	  "request_timeout": "2m",
//	  "auth_latency": "500ms",
//	  "export_dir": "wallpapers",
//	  "log_format": "zap",
//	  "s3": {"bucket": "walls", "region": "eu-central-1", "key_prefix": "exports"}
//	}
package config
