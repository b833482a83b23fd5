package executor

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/options"
)

// Match is one input file paired with the option node it is processed with.
type Match struct {
	// FileName is the slash-separated name relative to the base directory,
	// or the verbatim locator of a remote include.
	FileName string
	Node     *options.Node
	// Declared is true when the node came from a per-file entry.
	Declared bool
}

// MatchFileNames expands the configured include and exclude patterns below
// the base directory. The result is sorted and free of duplicates, with
// remote includes appended verbatim.
func (e *Executor) MatchFileNames() ([]string, error) {
	return e.matcher.Match(e.plugin.BaseDir, e.plugin.Includes, e.plugin.Excludes)
}

// Resolve returns the node fileName is processed with. A declared entry is
// used as is; otherwise a fresh node is chained under the defaults. In both
// cases the input option is rewritten to a file: locator under the base
// directory unless it already is a locator, and a relative output is
// anchored at the base directory. Resolve does not touch the disk.
func (e *Executor) Resolve(fileName string) (*Match, error) {
	if e.defaults == nil {
		return nil, fmt.Errorf("default options have not been resolved")
	}

	name := filepath.ToSlash(fileName)
	node, declared := e.index[indexKey(name)]

	identity := options.Resource(name)
	if declared {
		if r, ok := node.Resource(options.Input); ok {
			identity = r
		}
	} else {
		node = options.NewNode()
		if err := node.SetParent(e.defaults); err != nil {
			return nil, err
		}
	}

	if err := node.Set(options.Input, e.locate(identity)); err != nil {
		return nil, err
	}
	// A missing output is reported by EnsureTargetDirectory.
	if _, err := e.anchorOutput(node); err != nil && !errors.Is(err, ErrNoOutput) {
		return nil, err
	}
	return &Match{FileName: name, Node: node, Declared: declared}, nil
}

// locate turns a relative file name into a file: locator below the base
// directory. Locators and absolute paths keep their location.
func (e *Executor) locate(r options.Resource) options.Resource {
	if r.IsLocator() {
		return r
	}
	p := filepath.FromSlash(string(r))
	if !filepath.IsAbs(p) {
		p = filepath.Join(e.plugin.BaseDir, p)
	}
	return options.FileResource(p)
}

// ProcessFile resolves the node for fileName, makes sure its output directory
// is usable and runs the generator. Errors are returned as *ExecutionError.
func (e *Executor) ProcessFile(ctx context.Context, fileName string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("▶️ Processing file.")

	m, err := e.Resolve(fileName)
	if err != nil {
		return &ExecutionError{File: fileName, Err: err}
	}
	if err := e.EnsureTargetDirectory(ctx, m.Node); err != nil {
		return &ExecutionError{File: fileName, Err: err}
	}

	input, _ := m.Node.Resource(options.Input)
	logger.Debug("Running generator.", "input", input, "declared", m.Declared)
	if err := e.gen.Run(ctx, m.Node); err != nil {
		return &ExecutionError{File: fileName, Err: err}
	}

	logger.Info("✅ File processed.")
	return nil
}

// indexKey normalizes a file name for lookup. Local names are cleaned so that
// "./a.ttl" and "a.ttl" refer to the same entry; locators are kept verbatim.
func indexKey(name string) string {
	name = filepath.ToSlash(name)
	if options.Resource(name).IsLocator() {
		return name
	}
	return path.Clean(name)
}
