package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kevindugan/dependencyTree/internal/app"
	"github.com/kevindugan/dependencyTree/internal/render"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Dir is the temporary root the files were written to.
	Dir       string
	Output    string
	LogOutput string
	// Result is the decoded output; nil unless the run used JSON output and
	// succeeded.
	Result *render.Result
	Err    error
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files (relative path -> content) into a
// temporary directory and runs a full App against it. cfg.SourcePath is taken
// relative to that directory; empty means the directory itself. An empty
// cfg.Format selects JSON so the result can be decoded.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg.SourcePath = filepath.Join(tmpDir, cfg.SourcePath)
	if cfg.Format == "" {
		cfg.Format = render.FormatJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	runErr := app.NewApp(out, logs, appConfig).Run(ctx)

	if os.Getenv("DEPTREE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	result := &HarnessResult{
		Dir:       tmpDir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
	if runErr == nil && appConfig.Format == render.FormatJSON {
		var decoded render.Result
		require.NoError(t, json.Unmarshal([]byte(result.Output), &decoded))
		result.Result = &decoded
	}
	return result
}
