// Package cli defines the Cobra command tree for the create-module CLI. The
// root command scaffolds a project; version, config and doctor are registered
// as subcommands from their own files. Commands delegate to internal packages
// for the work and only handle flag parsing, wiring and output.
package cli
