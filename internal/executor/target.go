package executor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/options"
)

// anchorOutput makes a relative output of node absolute under the base
// directory and stores it on node, so the generator does not depend on the
// working directory. It does not touch the disk.
func (e *Executor) anchorOutput(node *options.Node) (string, error) {
	out, ok := node.String(options.Output)
	if !ok || out == "" {
		return "", ErrNoOutput
	}
	if filepath.IsAbs(out) {
		return out, nil
	}
	out = filepath.Join(e.plugin.BaseDir, out)
	if err := node.Set(options.Output, out); err != nil {
		return "", err
	}
	return out, nil
}

// EnsureTargetDirectory guarantees that the output directory of node exists
// and is writable, creating it with its parents when missing. A relative
// output is anchored at the base directory first.
func (e *Executor) EnsureTargetDirectory(ctx context.Context, node *options.Node) error {
	out, err := e.anchorOutput(node)
	if err != nil {
		return err
	}

	info, err := os.Stat(out)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctxlog.FromContext(ctx).Debug("Creating output directory.", "dir", out)
		if err := os.MkdirAll(out, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", out, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("inspect output directory %s: %w", out, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrOutputNotDirectory, out)
	}

	if !writable(out, info) {
		return fmt.Errorf("%w: %s", ErrOutputNotWritable, out)
	}
	return nil
}
