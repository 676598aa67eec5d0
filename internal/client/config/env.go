package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/common"
	"github.com/dmitrijs2005/aiwallpaper/internal/flagx"
	"github.com/spf13/viper"
)

// apiKeyEnv lists the environment variables holding the Gemini key, highest
// priority first.
var apiKeyEnv = []string{common.EnvPrefix + "_API_KEY", "GEMINI_API_KEY", "API_KEY"}

func flagConfigFile(args []string) string {
	return flagx.ConfigFileFlag(args)
}

// parseFileAndEnv overlays cfg with the JSON file at path (if any) and the
// environment. Nested keys map to env names with '_', e.g. s3.bucket is read
// from AIWALLPAPER_S3_BUCKET.
func parseFileAndEnv(cfg *Config, path string) error {
	v := viper.New()
	v.SetEnvPrefix(common.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database_path", cfg.DatabasePath)
	v.SetDefault("session_path", cfg.SessionPath)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("endpoint", cfg.Endpoint)
	v.SetDefault("request_timeout", cfg.RequestTimeout)
	v.SetDefault("auth_latency", cfg.AuthLatency)
	v.SetDefault("export_dir", cfg.ExportDir)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("s3.bucket", cfg.S3.Bucket)
	v.SetDefault("s3.region", cfg.S3.Region)
	v.SetDefault("s3.endpoint", cfg.S3.Endpoint)
	v.SetDefault("s3.key_prefix", cfg.S3.KeyPrefix)
	v.SetDefault("s3.access_key_id", cfg.S3.AccessKeyID)
	v.SetDefault("s3.secret_access_key", cfg.S3.SecretAccessKey)

	bind := append([]string{"api_key"}, apiKeyEnv...)
	if err := v.BindEnv(bind...); err != nil {
		return fmt.Errorf("failed to bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
