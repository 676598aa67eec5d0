package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/aiwallpaper/internal/common"
)

// S3Config selects the optional object-storage export target.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	KeyPrefix       string `mapstructure:"key_prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// Config holds runtime settings for the wallpaper CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding preferences, histories and accounts.
//   - SessionPath: SQLite file for the login session; empty keeps the session
//     in memory for the lifetime of the process.
//   - APIKey, Model, Endpoint: Gemini access.
//   - RequestTimeout: upper bound of one image request.
//   - AuthLatency: simulated delay of signup and login.
//   - ExportDir: default directory of the save command.
//   - LogFormat, LogLevel: see logging.New.
type Config struct {
	DatabasePath   string        `mapstructure:"database_path"`
	SessionPath    string        `mapstructure:"session_path"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	Endpoint       string        `mapstructure:"endpoint"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AuthLatency    time.Duration `mapstructure:"auth_latency"`
	ExportDir      string        `mapstructure:"export_dir"`
	LogFormat      string        `mapstructure:"log_format"`
	LogLevel       string        `mapstructure:"log_level"`
	S3             S3Config      `mapstructure:"s3"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = common.AppName + ".db"
	c.SessionPath = defaultSessionPath(os.Getenv("XDG_RUNTIME_DIR"))
	c.APIKey = ""
	c.Model = "gemini-2.5-flash-image"
	c.Endpoint = "https://generativelanguage.googleapis.com"
	c.RequestTimeout = 2 * time.Minute
	c.AuthLatency = 500 * time.Millisecond
	c.ExportDir = "wallpapers"
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.S3 = S3Config{Region: "us-east-1", KeyPrefix: common.AppName}
}

// defaultSessionPath places the session database in the per-login runtime
// directory, which the system clears when the user session ends.
func defaultSessionPath(runtimeDir string) string {
	if runtimeDir == "" {
		return ""
	}
	return filepath.Join(runtimeDir, common.AppName+"-session.db")
}

// Load builds a Config from defaults, the optional JSON file named by -c or
// -config, AIWALLPAPER_* environment variables and finally the flags in args.
// Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFileAndEnv(cfg, flagConfigFile(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load applied to the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
