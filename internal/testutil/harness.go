package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/schemagen/internal/app"
	"github.com/vk/schemagen/internal/hcl"
	"github.com/vk/schemagen/modules/print"
	"golang.org/x/tools/txtar"
)

// wantPrefix marks archive members that hold expectations rather than
// project files.
const wantPrefix = "want/"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Dir is the temporary project root the files were written to.
	Dir       string
	LogOutput string
	Err       error
	App       *app.App
	Calls     []Call
}

// Normalize replaces the temporary project root in s with $BASE.
func (r *HarnessResult) Normalize(s string) string {
	return strings.ReplaceAll(s, filepath.ToSlash(r.Dir), "$BASE")
}

// RunIntegrationTest writes files below a fresh temporary directory and runs
// the whole app against its schemagen.hcl. Only the "record" and "print"
// generators are registered; the configuration selects one of them.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	if cfg == nil {
		cfg = &app.Config{}
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = filepath.Join(dir, app.DefaultConfigFile)
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	recorder := &RecorderModule{}
	logBuffer := &app.SafeBuffer{}
	result := &HarnessResult{Dir: dir}

	testApp, err := app.NewApp(logBuffer, cfg, hcl.NewLoader(), recorder, &print.Module{})
	if err == nil {
		result.App = testApp
		err = testApp.Run(context.Background())
	}
	result.Err = err
	result.LogOutput = logBuffer.String()
	result.Calls = recorder.Calls()

	if os.Getenv("SCHEMAGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}

// RunArchive runs RunIntegrationTest with the members of a txtar archive as
// project files. Members below want/ are not written; they are returned for
// the caller to compare against.
func RunArchive(t *testing.T, path string) (*HarnessResult, map[string]string) {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	require.NoError(t, err)

	files := make(map[string]string)
	want := make(map[string]string)
	for _, f := range archive.Files {
		if name, ok := strings.CutPrefix(f.Name, wantPrefix); ok {
			want[name] = string(f.Data)
			continue
		}
		files[f.Name] = string(f.Data)
	}

	cfg := &app.Config{}
	for _, line := range strings.Split(string(archive.Comment), "\n") {
		if strings.TrimSpace(line) == "plan" {
			cfg.Plan = true
		}
	}
	return RunIntegrationTest(t, files, cfg), want
}
