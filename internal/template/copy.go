package template

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// excludedNames are files/directories never copied into a new project.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// LocalProvider copies a template directory on the local file system.
type LocalProvider struct {
	Dir string
}

// Materialize copies the template directory into dest, excluding
// node_modules/, .git/ and .DS_Store. Existing files in dest are overwritten;
// other files in dest are left alone.
func (p *LocalProvider) Materialize(_ context.Context, dest string) error {
	info, err := os.Stat(p.Dir)
	if err != nil {
		return fmt.Errorf("template directory %s: %w", p.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template %s is not a directory", p.Dir)
	}

	inside, err := isWithin(p.Dir, dest)
	if err != nil {
		return err
	}
	if inside {
		return fmt.Errorf("destination %s is inside template directory %s", dest, p.Dir)
	}

	slog.Debug("copying template", "from", p.Dir, "to", dest)
	if err := copyDir(p.Dir, dest); err != nil {
		return fmt.Errorf("copying %s to %s: %w", p.Dir, dest, err)
	}
	return nil
}

// isWithin reports whether path is root or lies under it, after resolving
// symlinks. path need not exist yet.
func isWithin(root, path string) (bool, error) {
	realRoot, err := resolvePath(root)
	if err != nil {
		return false, err
	}
	realPath, err := resolvePath(path)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(realRoot, realPath)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

// resolvePath returns the absolute, symlink-free form of path. Missing
// trailing elements are kept as given.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	var missing []string
	for {
		resolved, err := filepath.EvalSymlinks(abs)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("resolving %s: %w", path, err)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return filepath.Join(append([]string{abs}, missing...)...), nil
		}
		missing = append([]string{filepath.Base(abs)}, missing...)
		abs = parent
	}
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type()&os.ModeSymlink != 0:
			if err := copySymlink(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(dst, srcInfo.Mode().Perm())
}

// copySymlink recreates a symlink, replacing whatever is at dst.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	return os.Symlink(target, dst)
}
