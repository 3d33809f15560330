package vcs

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// setupGitEnv skips without git and gives commits a deterministic identity.
func setupGitEnv(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping")
	}
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}

// failCommits installs a pre-commit hook that always fails, injected through
// environment config.
func failCommits(t *testing.T) {
	t.Helper()
	hooks := t.TempDir()
	hook := filepath.Join(hooks, "pre-commit")
	if err := os.WriteFile(hook, []byte("#!/bin/sh\nexit 1\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "core.hooksPath")
	t.Setenv("GIT_CONFIG_VALUE_0", hooks)
}

func writeProjectFiles(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"widget"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# widget\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}

func TestInitializeCreatesOneCommit(t *testing.T) {
	setupGitEnv(t)
	dir := t.TempDir()
	writeProjectFiles(t, dir)

	g := &Git{CommitMessage: "init: project with create-module"}
	if err := g.Initialize(context.Background(), dir); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if count := gitOutput(t, dir, "rev-list", "--count", "HEAD"); count != "1" {
		t.Errorf("commit count = %s, want 1", count)
	}
	if msg := gitOutput(t, dir, "log", "-1", "--format=%s"); msg != "init: project with create-module" {
		t.Errorf("commit message = %q", msg)
	}
	if files := gitOutput(t, dir, "ls-files"); !strings.Contains(files, "package.json") {
		t.Errorf("package.json not committed, ls-files = %q", files)
	}
}

func TestInitializeAlreadyRepository(t *testing.T) {
	setupGitEnv(t)
	dir := t.TempDir()
	writeProjectFiles(t, dir)

	g := &Git{}
	if err := g.Initialize(context.Background(), dir); err != nil {
		t.Fatalf("first Initialize() error: %v", err)
	}

	err := g.Initialize(context.Background(), dir)
	if !errors.Is(err, ErrAlreadyRepository) {
		t.Fatalf("second Initialize() error = %v, want ErrAlreadyRepository", err)
	}
	if count := gitOutput(t, dir, "rev-list", "--count", "HEAD"); count != "1" {
		t.Errorf("commit count = %s, want 1", count)
	}
}

func TestInitializeRollsBackOnCommitFailure(t *testing.T) {
	setupGitEnv(t)
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks are not supported on windows")
	}

	failCommits(t)

	dir := t.TempDir()
	writeProjectFiles(t, dir)

	g := &Git{}
	if err := g.Initialize(context.Background(), dir); err == nil {
		t.Fatal("expected commit failure, got nil")
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); !os.IsNotExist(err) {
		t.Error(".git should be removed after a failed commit")
	}
	for _, name := range []string{"package.json", "README.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should be untouched: %v", name, err)
		}
	}
}

func TestInitializeKeepsExistingGitDirOnFailure(t *testing.T) {
	setupGitEnv(t)
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks are not supported on windows")
	}
	failCommits(t)

	dir := t.TempDir()
	writeProjectFiles(t, dir)
	// An empty .git is not a repository, so git init reinitializes it in place.
	marker := filepath.Join(dir, ".git", "keep.txt")
	if err := os.MkdirAll(filepath.Dir(marker), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(marker, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&Git{}).Initialize(context.Background(), dir); err == nil {
		t.Fatal("expected commit failure, got nil")
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("pre-existing .git should survive a failed commit: %v", err)
	}
}

func TestInitializeRollsBackOnEmptyProject(t *testing.T) {
	setupGitEnv(t)
	dir := t.TempDir()

	if err := (&Git{}).Initialize(context.Background(), dir); err == nil {
		t.Fatal("expected error committing an empty project, got nil")
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); !os.IsNotExist(err) {
		t.Error(".git should be removed after a failed commit")
	}
}

func TestInitializeGitMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if err := (&Git{}).Initialize(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error when git is missing, got nil")
	}
}

func TestIsRepo(t *testing.T) {
	setupGitEnv(t)
	dir := t.TempDir()
	if IsRepo(context.Background(), dir) {
		t.Fatal("fresh temp dir should not be a repository")
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if !IsRepo(context.Background(), dir) {
		t.Error("IsRepo() = false after git init")
	}
}

func TestSupportsInitialBranch(t *testing.T) {
	tests := []struct {
		output string
		want   bool
	}{
		{"git version 2.43.0", true},
		{"git version 2.28.0", true},
		{"git version 2.27.1", false},
		{"git version 2.39.3 (Apple Git-146)", true},
		{"not git", false},
	}
	for _, tt := range tests {
		if got := SupportsInitialBranch(tt.output); got != tt.want {
			t.Errorf("SupportsInitialBranch(%q) = %v, want %v", tt.output, got, tt.want)
		}
	}
}

func TestVersion(t *testing.T) {
	setupGitEnv(t)
	out, err := Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if !strings.HasPrefix(out, "git version") {
		t.Errorf("Version() = %q, want git version prefix", out)
	}
}
