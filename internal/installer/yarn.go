package installer

import (
	"context"
	"fmt"
	"io"

	"github.com/pardjs/create-module/internal/toolversion"
)

// DefaultYarnRegistry is the registry Yarn uses when none is configured.
const DefaultYarnRegistry = "https://registry.yarnpkg.com"

// YarnInstaller installs dependencies with Yarn. Classic Yarn (1.x) and
// Yarn 2+ are both supported.
type YarnInstaller struct {
	// Stdout and Stderr receive the installer's output; default os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `yarnpkg install --exact --cwd <dir>` for classic Yarn, or
// `yarn install` inside dir for Yarn 2+.
func (y *YarnInstaller) Install(ctx context.Context, dir string) (*Report, error) {
	bin, report, err := y.probe(ctx, dir)
	if err != nil {
		return nil, err
	}

	args := []string{"install", "--exact", "--cwd", dir}
	if isModernYarn(report.Version) {
		args = []string{"install"}
	}
	if err := stream(ctx, dir, y.Stdout, y.Stderr, bin, args...); err != nil {
		return report, fmt.Errorf("failed to install packages with yarn: %w", err)
	}
	return report, nil
}

// probe locates Yarn, reads its version and checks the configured registry.
func (y *YarnInstaller) probe(ctx context.Context, dir string) (string, *Report, error) {
	bin, err := lookPath("yarnpkg", "yarn")
	if err != nil {
		return "", nil, err
	}

	version, err := query(ctx, dir, bin, "--version")
	if err != nil {
		return "", nil, fmt.Errorf("checking yarn: %w", err)
	}
	report := &Report{Tool: ManagerYarn, Version: version}

	registryKey := "registry"
	if isModernYarn(version) {
		registryKey = "npmRegistryServer"
	}
	registry, err := query(ctx, dir, bin, "config", "get", registryKey)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("could not determine yarn registry: %v", err))
		return bin, report, nil
	}
	report.Registry = registry
	if w := registryWarning("yarn", registry, DefaultYarnRegistry); w != "" {
		report.Warnings = append(report.Warnings, w)
	}
	return bin, report, nil
}

func isModernYarn(version string) bool {
	return toolversion.Major(version) >= 2
}
