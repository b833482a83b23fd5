package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	cfg       *Config
	logger    *slog.Logger
	registry  *registry.Registry
	plugin    *config.Plugin
	generator generator.Generator
}

// NewApp is the constructor for the main application. It loads the
// configuration, applies the CLI overrides and builds the selected generator.
// Each App gets its own logger and registry.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	plugin, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "sources", len(plugin.Sources))

	if err := applyOverrides(plugin, cfg); err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	if err := plugin.ApplyDefaults(wd); err != nil {
		return nil, err
	}
	logger.Debug("Plugin configuration resolved.",
		"base_dir", plugin.BaseDir,
		"build_dir", plugin.BuildDir,
		"generator", plugin.Generator.Type,
	)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "generators", reg.Names())

	gen, err := reg.NewGenerator(plugin.Generator, outW)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:      outW,
		cfg:       cfg,
		logger:    logger,
		registry:  reg,
		plugin:    plugin,
		generator: gen,
	}, nil
}

// applyOverrides copies the non-empty CLI values over the file values.
// Directories given on the command line are relative to the working
// directory.
func applyOverrides(plugin *config.Plugin, cfg *Config) error {
	if cfg.BaseDir != "" {
		abs, err := filepath.Abs(cfg.BaseDir)
		if err != nil {
			return fmt.Errorf("resolve base directory %q: %w", cfg.BaseDir, err)
		}
		plugin.BaseDir = abs
	}
	if cfg.BuildDir != "" {
		abs, err := filepath.Abs(cfg.BuildDir)
		if err != nil {
			return fmt.Errorf("resolve build directory %q: %w", cfg.BuildDir, err)
		}
		plugin.BuildDir = abs
	}
	if cfg.Generator != "" || cfg.Command != "" {
		if plugin.Generator == nil {
			plugin.Generator = &config.Generator{}
		}
		if cfg.Generator != "" {
			plugin.Generator.Type = cfg.Generator
		}
		if cfg.Command != "" {
			plugin.Generator.Command = cfg.Command
		}
	}
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Plugin returns the resolved plugin configuration.
func (a *App) Plugin() *config.Plugin {
	return a.plugin
}
