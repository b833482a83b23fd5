package executor

import (
	"context"
	"fmt"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/options"
)

// BuiltinDefaults returns the root of every option chain. It only carries the
// output directory.
func BuiltinDefaults(outputDir string) *options.Node {
	n := options.NewNode()
	// Output is a string option; Set cannot fail here.
	_ = n.Set(options.Output, outputDir)
	return n
}

// ResolveDefaultOptions chains the default entries of sources on top of
// builtin and returns the most specific one. With defaults d1, d2, d3 in
// declaration order the chain is d3 -> d2 -> d1 -> builtin, so a later entry
// wins over an earlier one. Without any default entry builtin is returned.
func ResolveDefaultOptions(builtin *options.Node, sources []*config.Source) (*options.Node, error) {
	current := builtin
	for _, src := range sources {
		if !src.Default {
			continue
		}
		node, err := src.Node()
		if err != nil {
			return nil, err
		}
		if err := node.SetParent(current); err != nil {
			return nil, err
		}
		current = node
	}
	return current, nil
}

// RegisterFileOptions indexes a per-file entry by its file name, chained under
// the resolved defaults. An entry without a file name is skipped with a
// warning. A later entry for the same file replaces an earlier one.
func (e *Executor) RegisterFileOptions(ctx context.Context, src *config.Source) error {
	logger := ctxlog.FromContext(ctx)

	if e.defaults == nil {
		return fmt.Errorf("default options have not been resolved")
	}
	if src.Default {
		return fmt.Errorf("cannot register the default entry as file options")
	}
	if src.FileName == "" {
		logger.Warn("Ignoring options entry because no file name is specified.", "pos", src.Pos)
		return nil
	}

	node, err := src.Node()
	if err != nil {
		return err
	}
	if err := node.SetParent(e.defaults); err != nil {
		return err
	}

	key := indexKey(src.FileName)
	if _, exists := e.index[key]; exists {
		logger.Warn("Options entry redeclared, the later entry wins.", "file_name", src.FileName, "pos", src.Pos)
	}
	e.index[key] = node
	return nil
}
