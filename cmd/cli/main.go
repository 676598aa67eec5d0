package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/aiwallpaper/internal/buildinfo"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/cli"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/config"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/media"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter, err := buildExporter(ctx, cfg, logger)
	if err != nil {
		logger.Warn(ctx, "export disabled", "error", err)
		exporter = nil
	}

	app, err := cli.NewApp(ctx, cfg, logger, exporter)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}

// buildExporter returns nil when no bucket is configured.
func buildExporter(ctx context.Context, cfg *config.Config, logger logging.Logger) (cli.Exporter, error) {
	if cfg.S3.Bucket == "" {
		return nil, nil
	}

	client, err := media.NewS3Client(ctx, media.S3Options{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		KeyPrefix:       cfg.S3.KeyPrefix,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("build s3 client: %w", err)
	}
	logger.Info(ctx, "using s3 bucket", "bucket", cfg.S3.Bucket, "region", cfg.S3.Region)
	return media.NewS3Exporter(client, cfg.S3.Bucket, cfg.S3.KeyPrefix), nil
}
