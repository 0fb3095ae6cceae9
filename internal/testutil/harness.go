package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/brandreport/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RunResult holds the outcomes of an end-to-end pipeline run.
type RunResult struct {
	Stdout string
	Logs   string
	Err    error
}

// RunReport provides a standardized harness for running the full pipeline in
// tests. It writes the given CSV fixtures into a temporary directory and runs
// the app against them with a debug logger, capturing stdout and the log
// stream separately. Fixtures are passed in lexical filename order, so tests
// that depend on file ordering should name them accordingly (a.csv, b.csv).
func RunReport(t *testing.T, files map[string]string, reportType string) *RunResult {
	t.Helper()

	tmpDir := t.TempDir()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0644))
		paths = append(paths, path)
	}

	appConfig, err := app.NewConfig(app.Config{
		Files:      paths,
		ReportType: reportType,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	outBuf := &bytes.Buffer{}
	logBuf := &SafeBuffer{}
	runErr := app.New(outBuf, logBuf, appConfig).Run(context.Background())

	return &RunResult{
		Stdout: outBuf.String(),
		Logs:   logBuf.String(),
		Err:    runErr,
	}
}
