// Package installer installs a generated project's dependencies with the
// configured package manager. DispatchInstaller selects the Yarn or npm
// implementation by name.
package installer
