package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/fsutil"
	"github.com/vk/schemagen/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the `env` variable available to expressions. It
	// defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses every given file, and every .hcl file below every given
// directory, and merges them into one plugin model. Option errors are
// collected across all files and returned together.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Plugin, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	plugin := &config.Plugin{}
	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	var result *multierror.Error
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.merge(ctx, plugin, &root, filepath.Dir(file), evalCtx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	if plugin.BaseDir == "" {
		// Without base_dir the project root is where the configuration lives.
		dir, err := filepath.Abs(filepath.Dir(files[0]))
		if err != nil {
			return nil, fmt.Errorf("resolve configuration directory: %w", err)
		}
		plugin.BaseDir = dir
	}

	logger.Debug("HCL loading complete.",
		"includes", len(plugin.Includes),
		"excludes", len(plugin.Excludes),
		"sources", len(plugin.Sources),
	)
	return plugin, nil
}

// merge folds one decoded file into the plugin model. Relative base
// directories are anchored at the directory holding the file.
func (l *Loader) merge(ctx context.Context, p *config.Plugin, f *schema.File, dir string, evalCtx *hcl.EvalContext) error {
	if f.BaseDir != "" {
		p.BaseDir = f.BaseDir
		if !filepath.IsAbs(p.BaseDir) {
			p.BaseDir = filepath.Join(dir, p.BaseDir)
		}
	}
	if f.BuildDir != "" {
		p.BuildDir = f.BuildDir
	}
	p.Includes = append(p.Includes, f.Includes...)
	p.Excludes = append(p.Excludes, f.Excludes...)

	if f.Generator != nil {
		p.Generator = translateGenerator(f.Generator)
	}

	var result *multierror.Error
	for _, s := range f.Sources {
		src, err := translateSource(ctx, s, evalCtx)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		p.Sources = append(p.Sources, src)
	}
	return result.ErrorOrNil()
}

// evalContext exposes the process environment as `env`.
func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	vars := make(map[string]cty.Value)
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

// findAllHCLFiles returns the given files plus all .hcl files below the given
// directories, without duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
