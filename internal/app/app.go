package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/mechload/internal/ctxlog"
	"github.com/vk/mechload/internal/manifest"
	"github.com/vk/mechload/internal/registrar"
	"github.com/vk/mechload/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance whose mechanism table is already loaded: the
// banner decision and the registration sequence both happen here, exactly
// once, before anything can reference a mechanism by name. When no
// descriptors are given, the compiled-in core set is used.
func NewApp(outW io.Writer, cfg *Config, descriptors ...registrar.Descriptor) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(descriptors) == 0 {
		descriptors = coreMechanisms
	}

	reg := registry.New()
	opts := registrar.Options{Rank: cfg.Rank, Quiet: cfg.NoBanner, Stderr: cfg.BannerW}
	if err := registrar.Load(ctx, opts, reg, descriptors); err != nil {
		// A registration failure is a fatal startup error; the top-level
		// handler in main turns the panic into a clean exit.
		panic(err)
	}
	logger.Debug("All mechanisms registered.", "count", reg.Len())

	if cfg.ManifestPath != "" {
		manifests, err := manifest.LoadDir(ctx, cfg.ManifestPath)
		if err != nil {
			panic(fmt.Errorf("failed to load manifests: %w", err))
		}
		// A mismatch between code and manifests is a programmer error.
		if err := reg.Validate(ctx, manifests); err != nil {
			panic(err)
		}
		logger.Debug("Manifest validation passed.", "manifests", len(manifests))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's mechanism table. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
