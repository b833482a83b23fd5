// Package executor drives one schemagen run: it resolves the default option
// chain, indexes the per-file entries, expands the include patterns and hands
// every matched file, with its fully resolved options, to the generator.
package executor

import (
	"context"
	"fmt"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/fsutil"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/options"
)

// Executor processes the input files of a single plugin configuration, one
// at a time and in sorted order. It is not safe for concurrent use.
type Executor struct {
	plugin  *config.Plugin
	matcher fsutil.Matcher
	gen     generator.Generator

	defaults *options.Node
	index    map[string]*options.Node
}

// New creates an Executor. plugin must already have its defaults applied.
func New(plugin *config.Plugin, matcher fsutil.Matcher, gen generator.Generator) *Executor {
	return &Executor{
		plugin:  plugin,
		matcher: matcher,
		gen:     gen,
		index:   make(map[string]*options.Node),
	}
}

// Defaults returns the resolved default node, or nil before Prepare.
func (e *Executor) Defaults() *options.Node { return e.defaults }

// Prepare resolves the default chain and registers every per-file entry
// against it. Defaults are resolved first, so declaration order between
// default and per-file entries does not matter.
func (e *Executor) Prepare(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	defaults, err := ResolveDefaultOptions(BuiltinDefaults(e.plugin.OutputDir()), e.plugin.Sources)
	if err != nil {
		return err
	}
	e.defaults = defaults
	e.index = make(map[string]*options.Node)

	for _, src := range e.plugin.Sources {
		if src.Default {
			continue
		}
		if err := e.RegisterFileOptions(ctx, src); err != nil {
			return err
		}
	}
	logger.Debug("Option entries registered.", "files", len(e.index), "default_levels", defaults.Depth()+1)
	return nil
}

// Execute runs the whole build step. The first failing file aborts the run;
// files after it are not processed.
func (e *Executor) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Starting schemagen run.", "base_dir", e.plugin.BaseDir)

	if err := e.Prepare(ctx); err != nil {
		return fmt.Errorf("failed to prepare options: %w", err)
	}

	files, err := e.MatchFileNames()
	if err != nil {
		return fmt.Errorf("failed to match input files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No input files matched the configured includes.", "includes", e.plugin.Includes)
		return nil
	}
	e.logUnmatched(ctx, files)

	for _, file := range files {
		fileCtx := ctxlog.With(ctx, "file", file)
		if err := e.ProcessFile(fileCtx, file); err != nil {
			return err
		}
	}

	logger.Info("🏁 Schemagen run finished.", "files", len(files))
	return nil
}

// logUnmatched reports declared per-file entries that no matched file used.
func (e *Executor) logUnmatched(ctx context.Context, files []string) {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[indexKey(f)] = true
	}
	for key := range e.index {
		if !seen[key] {
			ctxlog.FromContext(ctx).Debug("Declared options entry matched no input file.", "file_name", key)
		}
	}
}
