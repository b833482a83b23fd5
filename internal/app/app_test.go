package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/hcl"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestApp_PlanDoesNotTouchBuildDir(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vocabs", "b.ttl"), "")
	writeFile(t, filepath.Join(dir, "vocabs", "a.ttl"), "")
	writeFile(t, filepath.Join(dir, "schemagen.hcl"), `
includes = ["vocabs/*.ttl"]

source {
  default      = true
  package_name = "org.example"
}

source {
  file_name  = "vocabs/b.ttl"
  class_name = "Bee"
}
`)
	a, logs := SetupAppTest(t, &Config{ConfigPath: filepath.Join(dir, "schemagen.hcl"), Plan: true})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, "file://"+filepath.ToSlash(filepath.Join(dir, "vocabs", "a.ttl")))
	assert.Contains(t, out, `class_name = "Bee"`)
	assert.Contains(t, out, `package_name = "org.example"  (inherited, 1 up)`)
	assert.NoDirExists(t, filepath.Join(dir, "target"))
}

func TestNewApp_Overrides(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(dir, "schemagen.hcl"), `
base_dir = "."
generator {
  type    = "exec"
  command = "from-file"
}
`)

	// --- Act ---
	a, _ := SetupAppTest(t, &Config{
		ConfigPath: filepath.Join(dir, "schemagen.hcl"),
		BaseDir:    other,
		Generator:  "print",
		Command:    "from-cli",
	})

	// --- Assert ---
	p := a.Plugin()
	assert.Equal(t, other, p.BaseDir)
	assert.Equal(t, filepath.Join(other, "target"), p.BuildDir)
	assert.Equal(t, "print", p.Generator.Type)
	assert.Equal(t, "from-cli", p.Generator.Command)
	assert.Equal(t, []string{"exec", "print"}, a.Registry().Names())
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		hcl     string
		wantErr string
	}{
		{
			name:    "unknown generator type",
			hcl:     `generator { type = "telepathy" }`,
			wantErr: `unknown generator type "telepathy"`,
		},
		{
			name:    "syntax error",
			hcl:     `source {`,
			wantErr: "failed to load configuration",
		},
		{
			name:    "unknown option",
			hcl:     "source {\n  file_name = \"a.ttl\"\n  colour = \"blue\"\n}\n",
			wantErr: "colour",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "schemagen.hcl")
			writeFile(t, path, tc.hcl)

			_, err := NewApp(&bytes.Buffer{}, &Config{ConfigPath: path}, hcl.NewLoader())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestApp_RunFailsOnUnusableOutput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ttl"), "")
	writeFile(t, filepath.Join(dir, "target", "generated-sources"), "not a directory")
	writeFile(t, filepath.Join(dir, "schemagen.hcl"), `
includes = ["*.ttl"]
generator { type = "print" }
`)
	a, _ := SetupAppTest(t, &Config{ConfigPath: filepath.Join(dir, "schemagen.hcl")})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")
	assert.Contains(t, err.Error(), "not a directory")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(tc.level, "json", &bytes.Buffer{})
			assert.True(t, logger.Enabled(context.Background(), tc.want))
			assert.False(t, logger.Enabled(context.Background(), tc.want-1))
		})
	}
}
