package vcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pardjs/create-module/internal/toolversion"
)

// ErrAlreadyRepository is returned by Initialize when dir is already inside a
// git work tree. Nothing is changed in that case.
var ErrAlreadyRepository = errors.New("already inside a git repository")

// initialBranchVersion is the first git release supporting --initial-branch.
const initialBranchVersion = "2.28.0"

// Git initializes repositories with the git binary on PATH.
type Git struct {
	CommitMessage string
	// InitialBranch names the first branch. Ignored on git older than 2.28.
	InitialBranch string
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// Version returns the output of `git --version`.
func Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", fmt.Errorf("git is required but not found in PATH")
	}
	return run(ctx, "", "--version")
}

// SupportsInitialBranch reports whether the git that printed version accepts
// --initial-branch.
func SupportsInitialBranch(version string) bool {
	return toolversion.AtLeast(version, initialBranchVersion)
}

// Initialize runs git init, stages every file and commits. If any step after
// git init fails and dir/.git did not exist beforehand, it is removed before
// the error is returned.
func (g *Git) Initialize(ctx context.Context, dir string) (err error) {
	if _, lookErr := exec.LookPath("git"); lookErr != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	if IsRepo(ctx, dir) {
		return ErrAlreadyRepository
	}

	version, err := run(ctx, dir, "--version")
	if err != nil {
		return fmt.Errorf("checking git: %w", err)
	}

	gitDir := filepath.Join(dir, ".git")
	_, statErr := os.Lstat(gitDir)
	createdGitDir := os.IsNotExist(statErr)

	initArgs := []string{"init"}
	if g.InitialBranch != "" && SupportsInitialBranch(version) {
		initArgs = append(initArgs, "--initial-branch="+g.InitialBranch)
	}
	if _, err := run(ctx, dir, initArgs...); err != nil {
		return fmt.Errorf("initializing repository: %w", err)
	}

	defer func() {
		if err == nil || !createdGitDir {
			return
		}
		slog.Debug("removing partial repository", "path", gitDir)
		if rmErr := os.RemoveAll(gitDir); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("removing %s: %w", gitDir, rmErr))
		}
	}()

	if _, err := run(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	message := g.CommitMessage
	if message == "" {
		message = "Initial commit"
	}
	if _, err := run(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}

	return nil
}

// run executes git with args in dir and returns trimmed combined output.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	slog.Debug("running git", "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		return out, fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, out)
	}
	return out, nil
}
