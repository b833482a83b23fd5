// Package exec provides the generator that shells out to an external
// schemagen executable, passing the resolved options as command-line flags.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"slices"
	"sort"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/options"
	"github.com/vk/schemagen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Generator runs Command once per input file. Args are passed before the
// option flags; Env is added to the inherited environment.
type Generator struct {
	Command string
	Args    []string
	Env     map[string]string
}

// New returns a generator for the given configuration block.
func New(cfg *config.Generator) (*Generator, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("exec generator: command must not be empty")
	}
	return &Generator{
		Command: cfg.Command,
		Args:    slices.Clone(cfg.Args),
		Env:     cfg.Env,
	}, nil
}

// Run invokes the external generator for node and waits for it to finish. A
// non-zero exit status is reported as a *generator.GenerateError carrying the
// combined output.
func (g *Generator) Run(ctx context.Context, node *options.Node) error {
	logger := ctxlog.FromContext(ctx)

	args := append(slices.Clone(g.Args), generator.Args(node)...)
	logger.Debug("Invoking external generator.", "command", g.Command, "args", args)

	var out bytes.Buffer
	cmd := osexec.CommandContext(ctx, g.Command, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.Env = g.environ()

	if err := cmd.Run(); err != nil {
		return &generator.GenerateError{
			Command: g.Command,
			Args:    args,
			Output:  out.String(),
			Err:     err,
		}
	}

	if out.Len() > 0 {
		logger.Debug("Generator output.", "output", out.String())
	}
	return nil
}

func (g *Generator) environ() []string {
	env := os.Environ()
	keys := make([]string, 0, len(g.Env))
	for k := range g.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+g.Env[k])
	}
	return env
}

// Register registers the generator with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterGenerator("exec", func(cfg *config.Generator, _ io.Writer) (generator.Generator, error) {
		return New(cfg)
	})
}
