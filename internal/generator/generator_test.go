package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/options"
)

func TestArgs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	defaults := options.NewNode()
	require.NoError(t, defaults.Set(options.Output, "/proj/target/generated-sources"))
	require.NoError(t, defaults.Set(options.PackageName, "org.example"))
	require.NoError(t, defaults.Set(options.LangOWL, true))
	require.NoError(t, defaults.Set(options.Include, []string{"http://root#"}))

	file := options.NewNode()
	require.NoError(t, file.SetParent(defaults))
	require.NoError(t, file.Set(options.Input, options.FileResource("/proj/onto.ttl")))
	require.NoError(t, file.Set(options.ClassName, "Onto"))
	require.NoError(t, file.Set(options.Include, []string{"http://a#", "http://b#"}))
	require.NoError(t, file.Set(options.NoComments, false))

	// --- Act ---
	got := Args(file)

	// --- Assert ---
	want := []string{
		"-i", "file:///proj/onto.ttl",
		"--owl",
		"-o", "/proj/target/generated-sources",
		"--package", "org.example",
		"-n", "Onto",
		"--include", "http://a#",
		"--include", "http://b#",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgs_EmptyNode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Args(options.NewNode()))
}

func TestGenerateError(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 3")
	err := error(&GenerateError{Command: "schemagen", Output: "  boom\n", Err: cause})

	assert.Equal(t, "generator schemagen failed: exit status 3\nboom", err.Error())
	require.ErrorIs(t, err, cause)

	var ge *GenerateError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "schemagen", ge.Command)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var seen *options.Node
	g := Func(func(_ context.Context, n *options.Node) error {
		seen = n
		return nil
	})

	n := options.NewNode()
	require.NoError(t, g.Run(context.Background(), n))
	assert.Same(t, n, seen)
}
