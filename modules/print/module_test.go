package print

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/options"
	"github.com/vk/schemagen/internal/registry"
)

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	defaults := options.NewNode()
	require.NoError(t, defaults.Set(options.Output, "/out"))
	require.NoError(t, defaults.Set(options.NoComments, true))

	node := options.NewNode()
	require.NoError(t, node.SetParent(defaults))
	require.NoError(t, node.Set(options.Input, options.FileResource("/proj/a.ttl")))
	require.NoError(t, node.Set(options.Include, []string{"http://a#"}))

	var out bytes.Buffer
	g := &Generator{Out: &out}

	// --- Act ---
	err := g.Run(context.Background(), node)

	// --- Assert ---
	require.NoError(t, err)
	want := `file:///proj/a.ttl
      no_comments = true  (inherited, 1 up)
      output = "/out"  (inherited, 1 up)
      include = ["http://a#"]
      args: --nocomments -i file:///proj/a.ttl -o /out --include http://a#
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	g, err := r.NewGenerator(&config.Generator{Type: "print"}, io.Discard)
	require.NoError(t, err)
	require.IsType(t, &Generator{}, g)
}
