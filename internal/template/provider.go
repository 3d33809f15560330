package template

import (
	"context"
	"os"
)

// Provider writes the template's files into a destination directory.
type Provider interface {
	Materialize(ctx context.Context, dest string) error
}

// Select returns a LocalProvider when source is an existing directory and a
// GitProvider otherwise.
func Select(source, ref string) Provider {
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		return &LocalProvider{Dir: source}
	}
	return &GitProvider{URL: source, Ref: ref}
}
