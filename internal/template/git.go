package template

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitProvider clones a remote template repository.
type GitProvider struct {
	URL string
	// Ref is a branch or tag to clone. Empty clones the default branch.
	Ref string
}

// Materialize performs a shallow clone of the template into a temporary
// directory and copies the working tree into dest without the template's
// .git directory. The temporary clone is always removed.
func (p *GitProvider) Materialize(ctx context.Context, dest string) error {
	if p.URL == "" {
		return fmt.Errorf("no template repository configured")
	}
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "create-module-template-*")
	if err != nil {
		return fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	cloneDir := filepath.Join(tmpDir, "template")
	if err := shallowClone(ctx, p.URL, p.Ref, cloneDir); err != nil {
		return fmt.Errorf("cloning template %s: %w", p.URL, err)
	}

	slog.Debug("copying cloned template", "from", cloneDir, "to", dest)
	if err := copyDir(cloneDir, dest); err != nil {
		return fmt.Errorf("copying cloned template to %s: %w", dest, err)
	}
	return nil
}

// shallowClone performs a --depth=1 clone of repoURL into targetDir.
func shallowClone(ctx context.Context, repoURL, ref, targetDir string) error {
	args := []string{"clone", "--depth=1"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, repoURL, targetDir)

	slog.Debug("running git", "args", args)
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("shallow clone: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
