package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._~-]*$`)

// ValidateName checks that name can be used both as a directory name and as
// an npm package name.
func ValidateName(name string) error {
	if len(name) > 214 {
		return fmt.Errorf("invalid name %q: must be at most 214 characters", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9._~-]*", name)
	}
	return nil
}

// ResolveDestination returns the absolute destination for name under workDir.
// An empty workDir means the current working directory. Symlinks in workDir
// are resolved.
func ResolveDestination(workDir, name string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		workDir = wd
	}

	resolved, err := filepath.EvalSymlinks(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving working directory %s: %w", workDir, err)
	}

	dest, err := filepath.Abs(filepath.Join(resolved, name))
	if err != nil {
		return "", fmt.Errorf("resolving destination: %w", err)
	}
	return dest, nil
}
