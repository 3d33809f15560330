// Package branding provides compile-time identity values for the CLI and the
// static scaffold descriptor: where the template lives, which organization
// namespaces generated packages, and which package manager installs them.
//
// Forkers edit branding.yaml and rebuild; Go's //go:embed bakes it into the
// binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName              string `yaml:"cli_name"`
	DisplayName          string `yaml:"display_name"`
	Description          string `yaml:"description"`
	HomeDir              string `yaml:"home_dir"`
	EnvPrefix            string `yaml:"env_prefix"`
	TemplateSource       string `yaml:"template_source"`
	TemplateRef          string `yaml:"template_ref"`
	Organization         string `yaml:"organization"`
	RepositoryURLPattern string `yaml:"repository_url_pattern"`
	DefaultAuthor        string `yaml:"default_author"`
	PackageManager       string `yaml:"package_manager"`
	CommitMessage        string `yaml:"commit_message"`
	DefaultBranch        string `yaml:"default_branch"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "create-module",
			DisplayName:    "create-module",
			Description:    "Scaffold a new module from the project template",
			HomeDir:        ".create-module",
			EnvPrefix:      "CREATE_MODULE",
			PackageManager: "yarn",
			CommitMessage:  "init: project with create-module",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-module").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-module").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_MODULE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateSource returns the default template location: a git URL or a local directory.
func TemplateSource() string { load(); return defaults.TemplateSource }

// TemplateRef returns the branch or tag cloned from a remote template. Empty means the default branch.
func TemplateRef() string { load(); return defaults.TemplateRef }

// Organization returns the npm scope used to namespace generated package names.
func Organization() string { load(); return defaults.Organization }

// RepositoryURLPattern returns the pattern used to build the manifest repository URL.
// It may contain {name} and {organization} placeholders.
func RepositoryURLPattern() string { load(); return defaults.RepositoryURLPattern }

// DefaultAuthor returns the suggested author string for the metadata prompt.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }

// PackageManager returns the package manager used to install dependencies.
func PackageManager() string { load(); return defaults.PackageManager }

// CommitMessage returns the message of the initial commit.
func CommitMessage() string { load(); return defaults.CommitMessage }

// DefaultBranch returns the initial branch name for new repositories.
func DefaultBranch() string { load(); return defaults.DefaultBranch }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("org") → "CREATE_MODULE_ORG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
