// Package template materializes the project template into the destination
// directory. A LocalProvider copies a template directory tree; a GitProvider
// shallow-clones a template repository. Select picks one from the configured
// template source.
package template
