package scaffold

import (
	"strings"

	"github.com/pardjs/create-module/internal/manifest"
)

// PackageInfo is the metadata collected from the user.
type PackageInfo struct {
	Description string
	Author      string
}

// Repository is the manifest's repository entry.
type Repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// CustomizedInfo is the metadata merged into the generated manifest and README.
type CustomizedInfo struct {
	PackageInfo
	Name string
	// Repository is nil when no repository URL pattern is configured.
	Repository *Repository
}

// PackageName returns name scoped under organization, e.g. "@pardjs/widget".
// An empty organization returns name unchanged.
func PackageName(name, organization string) string {
	organization = strings.TrimPrefix(strings.TrimSpace(organization), "@")
	if organization == "" {
		return name
	}
	return "@" + organization + "/" + name
}

// RepositoryURL expands {name} and {organization} in pattern.
func RepositoryURL(pattern, name, organization string) string {
	if pattern == "" {
		return ""
	}
	return strings.NewReplacer(
		"{name}", name,
		"{organization}", strings.TrimPrefix(organization, "@"),
	).Replace(pattern)
}

// NewCustomizedInfo builds the customized info for project name. With no
// organization and no repository pattern it yields the local-only variant
// (plain name, no repository entry).
func NewCustomizedInfo(name string, info PackageInfo, organization, repositoryPattern string) CustomizedInfo {
	ci := CustomizedInfo{
		PackageInfo: info,
		Name:        PackageName(name, organization),
	}
	if url := RepositoryURL(repositoryPattern, name, organization); url != "" {
		ci.Repository = &Repository{Type: "git", URL: url}
	}
	return ci
}

// Fields returns the manifest entries in the order they are merged.
func (ci CustomizedInfo) Fields() []manifest.Field {
	fields := []manifest.Field{
		{Key: "name", Value: ci.Name},
		{Key: "description", Value: ci.Description},
		{Key: "author", Value: ci.Author},
	}
	if ci.Repository != nil {
		fields = append(fields, manifest.Field{Key: "repository", Value: ci.Repository})
	}
	return fields
}

// RepositoryURL returns the repository URL, or "" when none is set.
func (ci CustomizedInfo) RepositoryURL() string {
	if ci.Repository == nil {
		return ""
	}
	return ci.Repository.URL
}
