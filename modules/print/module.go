// Package print provides a dry-run generator. Instead of producing code it
// reports, for every input file, the options the real generator would have
// received.
package print

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/options"
	"github.com/vk/schemagen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Generator writes a report block per input file to Out.
type Generator struct {
	Out io.Writer
}

// Run writes the resolved options of node. Each line shows the option, its
// value and how many levels up the cascade the value came from.
func (g *Generator) Run(ctx context.Context, node *options.Node) error {
	logger := ctxlog.FromContext(ctx)

	input, _ := node.Resource(options.Input)
	logger.Info("Printing resolved options", "input", input)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", input)
	for _, s := range node.Resolved() {
		if s.Option == options.Input {
			continue
		}
		fmt.Fprintf(&b, "      %s = %s", s.Option, formatValue(s.Value))
		if s.Depth > 0 {
			fmt.Fprintf(&b, "  (inherited, %d up)", s.Depth)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "      args: %s\n", strings.Join(generator.Args(node), " "))

	_, err := io.WriteString(g.Out, b.String())
	return err
}

func formatValue(v options.Value) string {
	switch v.Kind() {
	case options.KindList:
		quoted := make([]string, 0, len(v.List()))
		for _, s := range v.List() {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case options.KindBool:
		return v.String()
	default:
		return fmt.Sprintf("%q", v.String())
	}
}

// Register registers the generator with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterGenerator("print", func(_ *config.Generator, out io.Writer) (generator.Generator, error) {
		return &Generator{Out: out}, nil
	})
}
