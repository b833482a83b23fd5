package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/options"
)

// writeConfig writes content to dir/name and returns the full path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestLoader(env ...string) *Loader {
	return &Loader{Environ: func() []string { return env }}
}

func TestLoad_FullConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeConfig(t, dir, "schemagen.hcl", `
		base_dir  = "project"
		build_dir = "out"
		includes  = ["src/**/*.ttl", "http://example.org/onto.ttl"]
		excludes  = ["**/draft-*.ttl"]

		generator {
			type    = "exec"
			command = "/usr/bin/schemagen"
			args    = ["--owl"]
			env     = { JAVA_OPTS = "-Xmx512m" }
		}

		source {
			default      = true
			package_name = "org.example.vocab"
			no_comments  = true
		}

		source {
			file_name  = "src/foo.ttl"
			class_name = "Foo"
			include    = ["http://example.org/a#", "http://example.org/b#"]
		}
	`)

	// --- Act ---
	p, err := newTestLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "project"), p.BaseDir)
	assert.Equal(t, "out", p.BuildDir)
	assert.Equal(t, []string{"src/**/*.ttl", "http://example.org/onto.ttl"}, p.Includes)
	assert.Equal(t, []string{"**/draft-*.ttl"}, p.Excludes)

	require.NotNil(t, p.Generator)
	assert.Equal(t, &config.Generator{
		Type:    "exec",
		Command: "/usr/bin/schemagen",
		Args:    []string{"--owl"},
		Env:     map[string]string{"JAVA_OPTS": "-Xmx512m"},
	}, p.Generator)

	require.Len(t, p.Sources, 2)

	def := p.Sources[0]
	assert.True(t, def.Default)
	assert.Empty(t, def.FileName)
	assert.Equal(t, []config.Assignment{
		{Option: options.PackageName, Value: options.StringValue("org.example.vocab")},
		{Option: options.NoComments, Value: options.BoolValue(true)},
	}, def.Options)

	foo := p.Sources[1]
	assert.False(t, foo.Default)
	assert.Equal(t, "src/foo.ttl", foo.FileName)
	assert.Equal(t, []config.Assignment{
		{Option: options.ClassName, Value: options.StringValue("Foo")},
		{Option: options.Include, Value: options.ListValue("http://example.org/a#", "http://example.org/b#")},
	}, foo.Options)
}

func TestLoad_CoercesValuesToOptionKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "schemagen.hcl", `
		source {
			file_name    = "a.ttl"
			NOHEADER     = "true"
			include      = "http://example.org/single#"
			root         = "http://example.org/root"
			encoding     = env.SCHEMAGEN_ENCODING
			class_name   = 42
		}
	`)

	p, err := newTestLoader("SCHEMAGEN_ENCODING=UTF-8").Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, p.Sources, 1)

	node, err := p.Sources[0].Node()
	require.NoError(t, err)
	assert.True(t, node.IsTrue(options.NoHeader))
	assert.Equal(t, []string{"http://example.org/single#"}, node.Values(options.Include))
	root, ok := node.Resource(options.Root)
	require.True(t, ok)
	assert.Equal(t, options.Resource("http://example.org/root"), root)
	enc, _ := node.String(options.Encoding)
	assert.Equal(t, "UTF-8", enc)
	cls, _ := node.String(options.ClassName)
	assert.Equal(t, "42", cls)
}

func TestLoad_UnknownOptionsAreCollected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "schemagen.hcl", `
		source {
			file_name = "a.ttl"
			frobnicate = "x"
		}
		source {
			file_name   = "b.ttl"
			no_comments = "perhaps"
			wibble      = true
		}
	`)

	_, err := newTestLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.ErrorIs(t, err, options.ErrUnknownOption)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Contains(t, err.Error(), "wibble")
	assert.Contains(t, err.Error(), "no_comments")
}

func TestLoad_MergesDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeConfig(t, dir, "a.hcl", `
		includes = ["*.ttl"]
		build_dir = "first"
		source {
			default = true
			output  = "gen"
		}
	`)
	writeConfig(t, dir, "nested/b.hcl", `
		includes = ["*.owl"]
		build_dir = "second"
		source {
			file_name = "x.owl"
		}
	`)
	writeConfig(t, dir, "ignored.txt", `not hcl`)

	// --- Act ---
	p, err := newTestLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"*.ttl", "*.owl"}, p.Includes)
	assert.Equal(t, "second", p.BuildDir, "later files override scalars")
	require.Len(t, p.Sources, 2)
	assert.True(t, p.Sources[0].Default)
	assert.Equal(t, "x.owl", p.Sources[1].FileName)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `source {`,
			wantErr: "failed to parse",
		},
		{
			name:    "unknown top-level attribute",
			content: `colour = "blue"`,
			wantErr: "failed to decode",
		},
		{
			name: "nested block inside source",
			content: `
				source {
					file_name = "a.ttl"
					nested {}
				}
			`,
			wantErr: "Unexpected",
		},
		{
			name: "null option",
			content: `
				source {
					file_name = "a.ttl"
					output = null
				}
			`,
			wantErr: "must not be null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfig(t, dir, "schemagen.hcl", tt.content)

			_, err := newTestLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := newTestLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := newTestLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration files found")
}

func TestLoad_BaseDirDefaultsToConfigDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "nested/schemagen.hcl", `includes = ["*.ttl"]`)

	p, err := newTestLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested"), p.BaseDir)
}
