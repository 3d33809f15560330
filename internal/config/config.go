package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pardjs/create-module/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the scaffold command. Each can be set in the config
// file, or through an environment variable such as CREATE_MODULE_ORGANIZATION.
const (
	KeyTemplate             = "template"
	KeyTemplateRef          = "template_ref"
	KeyOrganization         = "organization"
	KeyRepositoryURLPattern = "repository_url_pattern"
	KeyAuthor               = "author"
	KeyPackageManager       = "package_manager"
	KeyCommitMessage        = "commit_message"
	KeyDefaultBranch        = "default_branch"
)

// Keys returns every key understood by the scaffold command.
func Keys() []string {
	return []string{
		KeyTemplate,
		KeyTemplateRef,
		KeyOrganization,
		KeyRepositoryURLPattern,
		KeyAuthor,
		KeyPackageManager,
		KeyCommitMessage,
		KeyDefaultBranch,
	}
}

// Settings is the resolved scaffold configuration for one run.
type Settings struct {
	Template             string
	TemplateRef          string
	Organization         string
	RepositoryURLPattern string
	Author               string
	PackageManager       string
	CommitMessage        string
	DefaultBranch        string
}

// Dir returns the path to the config directory (~/.create-module/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-module/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment, with
// the embedded descriptor values as defaults.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplate, branding.TemplateSource())
	viper.SetDefault(KeyTemplateRef, branding.TemplateRef())
	viper.SetDefault(KeyOrganization, branding.Organization())
	viper.SetDefault(KeyRepositoryURLPattern, branding.RepositoryURLPattern())
	viper.SetDefault(KeyAuthor, branding.DefaultAuthor())
	viper.SetDefault(KeyPackageManager, branding.PackageManager())
	viper.SetDefault(KeyCommitMessage, branding.CommitMessage())
	viper.SetDefault(KeyDefaultBranch, branding.DefaultBranch())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from defaults, config file and environment.
// Load must be called first.
func Current() Settings {
	return Settings{
		Template:             viper.GetString(KeyTemplate),
		TemplateRef:          viper.GetString(KeyTemplateRef),
		Organization:         viper.GetString(KeyOrganization),
		RepositoryURLPattern: viper.GetString(KeyRepositoryURLPattern),
		Author:               viper.GetString(KeyAuthor),
		PackageManager:       viper.GetString(KeyPackageManager),
		CommitMessage:        viper.GetString(KeyCommitMessage),
		DefaultBranch:        viper.GetString(KeyDefaultBranch),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
