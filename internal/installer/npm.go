package installer

import (
	"context"
	"fmt"
	"io"
)

// DefaultNpmRegistry is the registry npm uses when none is configured.
const DefaultNpmRegistry = "https://registry.npmjs.org/"

// NpmInstaller installs dependencies with npm.
type NpmInstaller struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `npm install` inside dir.
func (n *NpmInstaller) Install(ctx context.Context, dir string) (*Report, error) {
	bin, report, err := n.probe(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := stream(ctx, dir, n.Stdout, n.Stderr, bin, "install"); err != nil {
		return report, fmt.Errorf("failed to install packages with npm: %w", err)
	}
	return report, nil
}

func (n *NpmInstaller) probe(ctx context.Context, dir string) (string, *Report, error) {
	bin, err := lookPath("npm")
	if err != nil {
		return "", nil, err
	}

	version, err := query(ctx, dir, bin, "--version")
	if err != nil {
		return "", nil, fmt.Errorf("checking npm: %w", err)
	}
	report := &Report{Tool: ManagerNpm, Version: version}

	registry, err := query(ctx, dir, bin, "config", "get", "registry")
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("could not determine npm registry: %v", err))
		return bin, report, nil
	}
	report.Registry = registry
	if w := registryWarning("npm", registry, DefaultNpmRegistry); w != "" {
		report.Warnings = append(report.Warnings, w)
	}
	return bin, report, nil
}
