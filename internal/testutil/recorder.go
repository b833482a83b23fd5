package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/options"
	"github.com/vk/schemagen/internal/registry"
)

// Call is one recorded generator invocation.
type Call struct {
	Input string
	Args  []string
}

// RecorderModule registers the "record" generator, which records every
// invocation instead of generating anything. A generator arg of the form
// "fail=<suffix>" makes it fail for inputs ending in suffix.
type RecorderModule struct {
	mu    sync.Mutex
	calls []Call
}

// Register registers the "record" generator.
func (m *RecorderModule) Register(r *registry.Registry) {
	r.RegisterGenerator("record", func(cfg *config.Generator, _ io.Writer) (generator.Generator, error) {
		var failSuffix string
		for _, a := range cfg.Args {
			if v, ok := strings.CutPrefix(a, "fail="); ok {
				failSuffix = v
			}
		}
		return generator.Func(func(_ context.Context, node *options.Node) error {
			input, _ := node.Resource(options.Input)
			m.record(Call{Input: string(input), Args: generator.Args(node)})
			if failSuffix != "" && strings.HasSuffix(string(input), failSuffix) {
				return fmt.Errorf("recorder: forced failure for %s", input)
			}
			return nil
		}), nil
	})
}

func (m *RecorderModule) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// Calls returns a copy of the recorded invocations, in call order.
func (m *RecorderModule) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
