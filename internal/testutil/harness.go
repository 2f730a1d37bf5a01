package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskmill/taskmill/internal/app"
	"github.com/taskmill/taskmill/internal/registry"
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

// Result holds the outcomes of a harness run.
type Result struct {
	LogOutput string
	Err       error
	App       *app.App
}

// Harness materializes a task/config tree in a temporary directory and
// runs the app against it.
type Harness struct {
	t   *testing.T
	Dir string
}

// New creates a Harness rooted in a fresh temporary directory, which is
// the single search directory of every run.
func New(t *testing.T) *Harness {
	t.Helper()
	return &Harness{t: t, Dir: t.TempDir()}
}

// WriteFile writes content at a path relative to the harness root,
// creating intermediate directories. A task named "x" lives at
// "x/index.lua"; the config file is "taskmill.hcl" at the root.
func (h *Harness) WriteFile(rel, content string) {
	h.t.Helper()
	path := filepath.Join(h.Dir, rel)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
}

// Run executes the named tasks/aliases through a fresh App and returns
// the captured log output and error.
func (h *Harness) Run(names []string, argv map[string]string, modules ...registry.Module) *Result {
	h.t.Helper()
	return h.run(names, argv, false, modules...)
}

// List runs the discovery listing instead of executing tasks.
func (h *Harness) List(modules ...registry.Module) *Result {
	h.t.Helper()
	return h.run(nil, nil, true, modules...)
}

func (h *Harness) run(names []string, argv map[string]string, list bool, modules ...registry.Module) *Result {
	h.t.Helper()

	cfg, err := app.NewConfig(app.Config{
		Names:      names,
		Dirs:       []string{h.Dir},
		ConfigFile: "taskmill.hcl",
		List:       list,
		LogLevel:   "debug",
		LogFormat:  "text",
		Argv:       argv,
	})
	require.NoError(h.t, err)

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg, modules...)
	runErr := testApp.Run(context.Background(), cfg)

	if os.Getenv("TASKMILL_TEST_LOGS") == "true" {
		h.t.Logf("--- Full Log Output for %s ---\n%s", h.t.Name(), logBuffer.String())
	}

	return &Result{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
