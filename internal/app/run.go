package app

import (
	"context"
	"fmt"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/executor"
	"github.com/vk/schemagen/internal/fsutil"
)

// Run executes the build step, or only prints the plan when Plan is set.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.Plan {
		return a.plan(ctx)
	}

	exec := executor.New(a.plugin, fsutil.NewGlobMatcher(), a.generator)
	if err := exec.Execute(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// plan resolves every matched file and reports its options with the print
// generator. Nothing is written below the build directory.
func (a *App) plan(ctx context.Context) error {
	printer, err := a.registry.NewGenerator(&config.Generator{Type: "print"}, a.outW)
	if err != nil {
		return err
	}

	exec := executor.New(a.plugin, fsutil.NewGlobMatcher(), printer)
	if err := exec.Prepare(ctx); err != nil {
		return fmt.Errorf("failed to prepare options: %w", err)
	}
	files, err := exec.MatchFileNames()
	if err != nil {
		return fmt.Errorf("failed to match input files: %w", err)
	}
	a.logger.Info("📋 Planning schemagen run.", "files", len(files))

	for _, file := range files {
		m, err := exec.Resolve(file)
		if err != nil {
			return &executor.ExecutionError{File: file, Err: err}
		}
		if err := printer.Run(ctxlog.With(ctx, "file", file), m.Node); err != nil {
			return &executor.ExecutionError{File: file, Err: err}
		}
	}
	return nil
}
