package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/aiwallpaper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   profile database path
//	-s string   session database path ("" keeps the session in memory)
//	-m string   Gemini model
//	-o string   default export directory
//	-l string   log level
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// components (like -c) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-m", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "profile database path")
	fs.StringVar(&cfg.SessionPath, "s", cfg.SessionPath, "session database path")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "image model")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
