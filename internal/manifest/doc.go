// Package manifest reads, patches and validates the generated project's
// package.json. Top-level key order is preserved across a read/merge/write
// cycle so a patched manifest diffs cleanly against the template's.
package manifest
