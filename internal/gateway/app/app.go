package app

import (
	"context"
	"fmt"
	"log"

	"amigurumi/internal/gateway/config"
	"amigurumi/internal/gateway/handler"
	"amigurumi/internal/gateway/repository/artifact"
	"amigurumi/internal/gateway/repository/patternstore"
	"amigurumi/internal/gateway/server"
	gatewaycompile "amigurumi/internal/gateway/service/compile"
)

type App struct {
	server *server.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	patterns := patternstore.NewFromConfig(cfg.Store.DSN, cfg.Store.Path)

	var artifacts *artifact.S3Store
	if cfg.Artifact.Enabled {
		artifacts, err = artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			log.Printf("artifact store disabled: %v", err)
			artifacts = nil
		}
	}

	svc, err := gatewaycompile.New(cfg.CacheSize, patterns, artifacts)
	if err != nil {
		return nil, err
	}

	mux := server.NewMux(handler.New(svc))
	return &App{server: server.New(cfg.Port, mux)}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
