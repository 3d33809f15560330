// Package vcs initializes a git repository for a freshly generated project
// and creates its first commit. A failed initialization removes the partial
// .git directory so the project is never left half-initialized.
package vcs
