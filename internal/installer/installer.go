package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Installer installs dependencies for the project in dir.
type Installer interface {
	Install(ctx context.Context, dir string) (*Report, error)
}

// Report describes a completed installation.
type Report struct {
	Tool     string
	Version  string
	Registry string
	// Warnings are non-fatal findings, such as a non-default registry.
	Warnings []string
}

// Supported package manager identifiers.
const (
	ManagerYarn = "yarn"
	ManagerNpm  = "npm"
)

// DispatchInstaller returns the Installer for the given package manager name.
// Unknown names return an installer that always fails.
func DispatchInstaller(name string, stdout, stderr io.Writer) Installer {
	switch name {
	case ManagerYarn:
		return &YarnInstaller{Stdout: stdout, Stderr: stderr}
	case ManagerNpm:
		return &NpmInstaller{Stdout: stdout, Stderr: stderr}
	default:
		return &unknownInstaller{name: name}
	}
}

// unknownInstaller is returned when the package manager is not recognized.
type unknownInstaller struct {
	name string
}

func (u *unknownInstaller) Install(_ context.Context, _ string) (*Report, error) {
	return nil, errUnknownManager(u.name)
}

func errUnknownManager(name string) error {
	return fmt.Errorf("unknown package manager %q: supported package managers are %q and %q", name, ManagerYarn, ManagerNpm)
}

// Probe checks that the named package manager is usable from dir without
// installing anything. The report carries its version and registry.
func Probe(ctx context.Context, name, dir string) (*Report, error) {
	var (
		report *Report
		err    error
	)
	switch name {
	case ManagerYarn:
		_, report, err = (&YarnInstaller{}).probe(ctx, dir)
	case ManagerNpm:
		_, report, err = (&NpmInstaller{}).probe(ctx, dir)
	default:
		err = errUnknownManager(name)
	}
	return report, err
}

// lookPath returns the first of names found on PATH.
func lookPath(names ...string) (string, error) {
	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s is required but not found in PATH", names[0])
}

// query runs a short command in dir and returns its trimmed stdout.
func query(ctx context.Context, dir, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", bin, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

// stream runs a command in dir with stdout/stderr attached to the given
// writers, defaulting to the process's own.
func stream(ctx context.Context, dir string, stdout, stderr io.Writer, bin string, args ...string) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	slog.Debug("running package manager", "bin", bin, "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// sameRegistry compares registry URLs ignoring a trailing slash.
func sameRegistry(a, b string) bool {
	return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
}

// registryWarning returns a warning if registry is not the tool's default.
func registryWarning(tool, registry, defaultRegistry string) string {
	if registry == "" || registry == "undefined" || sameRegistry(registry, defaultRegistry) {
		return ""
	}
	return fmt.Sprintf("%s is using registry %s instead of the default %s", tool, registry, defaultRegistry)
}
