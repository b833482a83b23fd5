package registry

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/generator"
	"github.com/vk/schemagen/internal/options"
)

type stubModule struct{ name string }

func (m *stubModule) Register(r *Registry) {
	r.RegisterGenerator(m.name, func(*config.Generator, io.Writer) (generator.Generator, error) {
		return generator.Func(func(context.Context, *options.Node) error { return nil }), nil
	})
}

func TestRegistry_NewGenerator(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New()
	(&stubModule{name: "print"}).Register(r)
	(&stubModule{name: "Exec"}).Register(r)

	// --- Act ---
	g, err := r.NewGenerator(&config.Generator{Type: "EXEC"}, io.Discard)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, []string{"exec", "print"}, r.Names())
}

func TestRegistry_UnknownType(t *testing.T) {
	t.Parallel()

	r := New()
	(&stubModule{name: "print"}).Register(r)

	_, err := r.NewGenerator(&config.Generator{Type: "javac"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown generator type "javac" (available: print)`)

	_, err = r.NewGenerator(nil, io.Discard)
	require.Error(t, err)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	(&stubModule{name: "print"}).Register(r)
	assert.Panics(t, func() { (&stubModule{name: "print"}).Register(r) })
}
