// Package testutil provides test utilities for command and integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/firefly-engineering/worldclock/internal/app"
)

// Summer is the instant test clocks start at: 2024-07-01T12:00:00Z, a Monday
// with daylight saving in effect on both sides of the Atlantic.
var Summer = time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

// TestEnv holds the test environment
type TestEnv struct {
	T         *testing.T
	TmpDir    string
	ConfigDir string
	Clock     *clockwork.FakeClock
	App       *app.App
}

// NewTestEnv creates a test environment with a fake clock at Summer and
// installs it as the default app until the test ends.
func NewTestEnv(t *testing.T, opts ...app.Option) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", configDir, err)
	}

	fc := clockwork.NewFakeClockAt(Summer)
	testApp := app.New(append([]app.Option{app.WithClock(fc)}, opts...)...)

	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() { app.SetDefault(originalDefault) })

	return &TestEnv{
		T:         t,
		TmpDir:    tmpDir,
		ConfigDir: configDir,
		Clock:     fc,
		App:       testApp,
	}
}

// WriteCatalog writes a catalog file into the environment's config dir and
// returns its path.
func (e *TestEnv) WriteCatalog(name string, data []byte) string {
	e.T.Helper()

	path := filepath.Join(e.ConfigDir, name+".toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write catalog: %v", err)
	}
	return path
}

// MustFixture loads a fixture or fails the test.
func MustFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return data
}
