package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFileProcessed checks the log output within a HarnessResult to confirm
// that the given input file was handed to the generator successfully.
func AssertFileProcessed(t *testing.T, result *HarnessResult, fileName string) {
	t.Helper()

	expected := fmt.Sprintf("file=%s", fileName)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "File processed") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "file not processed", "expected a completion log line for %q", fileName)
}

// CallLines renders the recorded calls as one normalized argument line each.
func CallLines(result *HarnessResult) []string {
	lines := make([]string, 0, len(result.Calls))
	for _, c := range result.Calls {
		lines = append(lines, result.Normalize(strings.Join(c.Args, " ")))
	}
	return lines
}
