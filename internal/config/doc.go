// Package config manages user-level settings stored at ~/.create-module/config.yaml.
// Values fall back to the embedded branding descriptor and can be overridden
// through CREATE_MODULE_* environment variables.
package config
