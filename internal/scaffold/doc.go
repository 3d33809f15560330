// Package scaffold creates a new project from the template. A Scaffolder runs
// the fixed sequence of steps (resolve destination, overwrite guard, metadata
// prompt, template materialization, manifest and README patches, dependency
// install, git initialization, completion report) against narrow
// collaborator interfaces, and returns a Result instead of exiting the
// process.
package scaffold
