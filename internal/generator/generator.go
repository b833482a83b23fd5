// Package generator defines the contract between a schemagen run and the
// external code generator, and derives the generator's command line from a
// resolved options cascade.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/schemagen/internal/options"
)

// Generator consumes one resolved options node per matched input file. The
// node guarantees a resolved input locator and an existing, writable output
// directory; every other option is read through the cascade accessors.
type Generator interface {
	Run(ctx context.Context, node *options.Node) error
}

// Func adapts a plain function to the Generator interface.
type Func func(ctx context.Context, node *options.Node) error

// Run implements Generator.
func (f Func) Run(ctx context.Context, node *options.Node) error {
	return f(ctx, node)
}

// GenerateError reports a failed generator invocation.
type GenerateError struct {
	Command string
	Args    []string
	// Output is whatever the generator wrote before failing.
	Output string
	Err    error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	msg := fmt.Sprintf("generator %s failed: %v", e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *GenerateError) Unwrap() error { return e.Err }

// Args returns the command-line arguments for the effective options of node.
// Bool options emit their bare flag when switched on, list options repeat
// the flag once per value and every other option emits flag and value.
func Args(node *options.Node) []string {
	var args []string
	for _, s := range node.Resolved() {
		flag := s.Option.Flag()
		switch s.Option.Kind() {
		case options.KindBool:
			args = append(args, flag)
		case options.KindList:
			for _, v := range s.Value.List() {
				args = append(args, flag, v)
			}
		default:
			args = append(args, flag, s.Value.String())
		}
	}
	return args
}
