package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/weissgruber/website/cmd/assetaudit/internal/audit"
	"github.com/weissgruber/website/cmd/assetaudit/internal/configuration"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
	_ "gocloud.dev/blob/s3blob"
)

var (
	Version string = "development"
	appName string = "weissgruber-assetaudit"

	config configuration.Config
)

func main() {
	var (
		err      error
		artworks []models.Artwork
		s3Client s3.S3Client
	)

	config = configuration.LoadConfig()
	setupLogger()

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("bucket", config.AwsBucket),
		slog.String("prefix", config.AssetPrefix),
		slog.String("sourceURL", config.SourceURL),
		slog.Int("workers", config.AuditWorkers),
	)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := services.NewArtworkLoader(services.ArtworkLoaderConfig{
		SourceKey: config.SourceKey,
		SourceURL: config.SourceURL,
	})

	if artworks, err = loader.Load(shutdownCtx); err != nil {
		slog.Error("error loading catalogue", "error", err)
		os.Exit(1)
	}

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		slog.Error("error loading AWS config", "error", err)
		os.Exit(1)
	}

	if s3Client, err = s3.NewClient(awsConfig); err != nil {
		slog.Error("error creating S3 client", "error", err)
		os.Exit(1)
	}

	auditor := audit.NewAuditorService(audit.AuditorConfig{
		Bucket:      config.AwsBucket,
		MaxWorkers:  config.AuditWorkers,
		Prefix:      config.AssetPrefix,
		S3Client:    s3Client,
		ShutdownCtx: shutdownCtx,
	})

	report := auditor.Run(artworks)

	slog.Info("asset audit finished",
		"numArtworks", len(artworks),
		"checked", report.Checked,
		"total", report.Total,
		"incomplete", report.Incomplete,
		"missing", len(report.Missing),
		"failed", len(report.Failed),
	)

	if !report.OK() {
		os.Exit(1)
	}
}

func setupLogger() {
	level := slog.LevelInfo

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
