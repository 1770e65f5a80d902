// Where: internal/app/helpers_test.go
// What: Shared fixtures for CLI command tests.
// Why: Keep per-command tests focused on command behavior.
package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wsgibox/wsgibox/internal/state"
)

// writeProjectFixture creates the minimum project layout: a dependency
// manifest and the default application file.
func writeProjectFixture(t *testing.T, projectDir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(projectDir, "requirements.txt"), []byte("flask\ngunicorn\n"), 0o644); err != nil {
		t.Fatalf("write requirements fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, "app.py"), []byte("app = object()\n"), 0o644); err != nil {
		t.Fatalf("write app fixture: %v", err)
	}
}

// writeConfigFixture writes a wsgibox.yml with the given content.
func writeConfigFixture(t *testing.T, projectDir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(projectDir, "wsgibox.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
}

// testContext resolves the canonical context the commands under test will see.
func testContext(t *testing.T, projectDir string) state.Context {
	t.Helper()
	ctx, err := state.ResolveContext(projectDir)
	if err != nil {
		t.Fatalf("resolve context: %v", err)
	}
	return ctx
}

// stubTerminal overrides TTY detection for the duration of a test.
func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(_ *os.File) bool { return interactive }
}

type fakePrompter struct {
	input      string
	inputErr   error
	confirm    bool
	confirmErr error
	titles     []string
}

func (f *fakePrompter) Input(title, _ string) (string, error) {
	f.titles = append(f.titles, title)
	return f.input, f.inputErr
}

func (f *fakePrompter) Confirm(title string) (bool, error) {
	f.titles = append(f.titles, title)
	return f.confirm, f.confirmErr
}
