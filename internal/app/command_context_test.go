// Where: internal/app/command_context_test.go
// What: Tests for shared command context resolution.
// Why: Ensure directory precedence and override semantics stay fixed.
package app

import (
	"testing"
)

func TestResolveCommandContextDirPrecedence(t *testing.T) {
	flagDir := t.TempDir()
	depsDir := t.TempDir()

	cli := CLI{Dir: flagDir}
	deps := Dependencies{ProjectDir: depsDir}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := testContext(t, flagDir)
	if ctxInfo.Context.ProjectDir != want.ProjectDir {
		t.Fatalf("expected flag dir to win, got %s", ctxInfo.Context.ProjectDir)
	}
}

func TestResolveCommandContextFallsBackToDeps(t *testing.T) {
	depsDir := t.TempDir()

	ctxInfo, err := resolveCommandContext(CLI{}, Dependencies{ProjectDir: depsDir})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := testContext(t, depsDir)
	if ctxInfo.Context.ProjectDir != want.ProjectDir {
		t.Fatalf("expected deps dir, got %s", ctxInfo.Context.ProjectDir)
	}
}

func TestResolveCommandContextMissingDir(t *testing.T) {
	_, err := resolveCommandContext(CLI{Dir: "/nonexistent/project"}, Dependencies{})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestResolveCommandContextInvalidConfig(t *testing.T) {
	projectDir := t.TempDir()
	writeConfigFixture(t, projectDir, "port: not-a-number\n")

	_, err := resolveCommandContext(CLI{}, Dependencies{ProjectDir: projectDir})
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}
}

func TestApplyBuildOverrides(t *testing.T) {
	tests := []struct {
		name     string
		appFile  string
		tag      string
		wantFile string
		wantTag  string
	}{
		{name: "no overrides", wantFile: "app.py", wantTag: "latest"},
		{name: "app file", appFile: "service.py", wantFile: "service.py", wantTag: "latest"},
		{name: "tag", tag: "v3", wantFile: "app.py", wantTag: "v3"},
		{name: "whitespace ignored", appFile: "  ", tag: " ", wantFile: "app.py", wantTag: "latest"},
		{name: "both", appFile: "worker.py", tag: "rc1", wantFile: "worker.py", wantTag: "rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctxInfo, err := resolveCommandContext(CLI{}, Dependencies{ProjectDir: t.TempDir()})
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			r := applyBuildOverrides(ctxInfo.Recipe, tt.appFile, tt.tag)
			if r.AppFile != tt.wantFile {
				t.Fatalf("unexpected app file: %s", r.AppFile)
			}
			if r.Tag != tt.wantTag {
				t.Fatalf("unexpected tag: %s", r.Tag)
			}
		})
	}
}
