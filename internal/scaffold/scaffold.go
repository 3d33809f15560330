package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pardjs/create-module/internal/installer"
	"github.com/pardjs/create-module/internal/interaction"
	"github.com/pardjs/create-module/internal/manifest"
	"github.com/pardjs/create-module/internal/readme"
	"github.com/pardjs/create-module/internal/vcs"
)

// ErrAborted is returned when the user declines to overwrite an existing
// destination. It is not a failure.
var ErrAborted = errors.New("scaffold aborted by user")

// TemplateProvider writes the template into the destination.
type TemplateProvider interface {
	Materialize(ctx context.Context, dest string) error
}

// PackageInstaller installs the generated project's dependencies.
type PackageInstaller interface {
	Install(ctx context.Context, dir string) (*installer.Report, error)
}

// RepositoryInitializer creates the project's repository and initial commit.
// It returns vcs.ErrAlreadyRepository when dir is already under version control.
type RepositoryInitializer interface {
	Initialize(ctx context.Context, dir string) error
}

// Prompter asks the user for confirmation and metadata.
type Prompter interface {
	Confirm(title string, defaultYes bool) (bool, error)
	Inputs(inputs ...interaction.Input) error
}

// Reporter receives user-facing progress output.
type Reporter interface {
	Info(msg string)
	Step(msg string)
	Warn(msg string)
	Success(msg string)
}

// Options configures a scaffold run.
type Options struct {
	// WorkDir is the directory the project is created in. Empty means the
	// current working directory.
	WorkDir              string
	Organization         string
	RepositoryURLPattern string
	DefaultAuthor        string
	PackageManager       string
	SkipInstall          bool
	SkipGit              bool
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Name        string
	Destination string
	Info        CustomizedInfo
	Warnings    []string
	Installed   bool
	Committed   bool
}

// Scaffolder runs the scaffold workflow. Every collaborator must be set.
type Scaffolder struct {
	Template   TemplateProvider
	Installer  PackageInstaller
	Repository RepositoryInitializer
	Prompter   Prompter
	Reporter   Reporter
	Options    Options

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Run creates project name. Steps run strictly in order. A returned error
// other than ErrAborted means a fatal step failed and later steps did not run;
// recoverable problems are collected in Result.Warnings.
func (s *Scaffolder) Run(ctx context.Context, name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	dest, err := ResolveDestination(s.Options.WorkDir, name)
	if err != nil {
		return nil, err
	}
	res := &Result{Name: name, Destination: dest}
	slog.Debug("resolved destination", "name", name, "dest", dest)

	s.Reporter.Info(fmt.Sprintf("Creating project scaffold for %s", name))

	if err := s.guardOverwrite(dest); err != nil {
		return res, err
	}

	info, err := s.collectInfo()
	if err != nil {
		return res, err
	}
	res.Info = NewCustomizedInfo(name, info, s.Options.Organization, s.Options.RepositoryURLPattern)

	s.Reporter.Step("Copying template")
	if err := s.Template.Materialize(ctx, dest); err != nil {
		return res, fmt.Errorf("materializing template: %w", err)
	}

	s.patchManifest(res)
	s.patchReadme(res)

	if s.Options.SkipInstall {
		s.Reporter.Step("Skipping dependency installation")
	} else if err := s.install(ctx, res); err != nil {
		return res, err
	}

	if s.Options.SkipGit {
		s.Reporter.Step("Skipping git initialization")
	} else if err := s.initRepository(ctx, res); err != nil {
		return res, err
	}

	s.Reporter.Success(fmt.Sprintf("Created %s at %s", res.Info.Name, dest))
	s.Reporter.Info(NextSteps(res, s.packageManager(), s.Options.SkipInstall))
	return res, nil
}

// guardOverwrite asks before reusing an existing destination.
func (s *Scaffolder) guardOverwrite(dest string) error {
	if _, err := os.Lstat(dest); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking destination %s: %w", dest, err)
	}

	ok, err := s.Prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", dest), true)
	if err != nil {
		return fmt.Errorf("confirming overwrite: %w", err)
	}
	if !ok {
		slog.Debug("overwrite declined", "dest", dest)
		return ErrAborted
	}
	return nil
}

// collectInfo prompts for the free-form metadata fields in one batch.
func (s *Scaffolder) collectInfo() (PackageInfo, error) {
	var info PackageInfo
	err := s.Prompter.Inputs(
		interaction.Input{Title: "Description", Value: &info.Description},
		interaction.Input{Title: "Author", Default: s.Options.DefaultAuthor, Value: &info.Author},
	)
	if err != nil {
		return PackageInfo{}, fmt.Errorf("collecting project metadata: %w", err)
	}
	return info, nil
}

func (s *Scaffolder) patchManifest(res *Result) {
	s.Reporter.Step("Updating " + manifest.FileName)
	result, err := manifest.Patch(res.Destination, res.Info.Fields()...)
	if err != nil {
		s.warn(res, fmt.Sprintf("could not update %s, continuing without updated metadata: %v", manifest.FileName, err))
		return
	}
	for _, issue := range result.Issues {
		s.warn(res, fmt.Sprintf("%s: %s", manifest.FileName, issue))
	}
}

func (s *Scaffolder) patchReadme(res *Result) {
	s.Reporter.Step("Writing " + readme.FileName)
	data := readme.Data{
		Name:           res.Info.Name,
		Description:    res.Info.Description,
		Author:         res.Info.Author,
		RepositoryURL:  res.Info.RepositoryURL(),
		PackageManager: s.packageManager(),
		Year:           s.now().Year(),
	}
	if err := readme.Write(res.Destination, data); err != nil {
		s.warn(res, fmt.Sprintf("could not write %s: %v", readme.FileName, err))
	}
}

func (s *Scaffolder) install(ctx context.Context, res *Result) error {
	s.Reporter.Step("Installing dependencies with " + s.packageManager())
	report, err := s.Installer.Install(ctx, res.Destination)
	if report != nil {
		for _, w := range report.Warnings {
			s.warn(res, w)
		}
	}
	if err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	res.Installed = true
	return nil
}

func (s *Scaffolder) initRepository(ctx context.Context, res *Result) error {
	s.Reporter.Step("Initializing git repository")
	err := s.Repository.Initialize(ctx, res.Destination)
	switch {
	case errors.Is(err, vcs.ErrAlreadyRepository):
		s.warn(res, fmt.Sprintf("%s is already inside a git repository, skipping git init", res.Destination))
		return nil
	case err != nil:
		return fmt.Errorf("initializing git repository: %w", err)
	}
	res.Committed = true
	return nil
}

func (s *Scaffolder) warn(res *Result, msg string) {
	slog.Debug("recoverable step failure", "warning", msg)
	res.Warnings = append(res.Warnings, msg)
	s.Reporter.Warn(msg)
}

func (s *Scaffolder) packageManager() string {
	if s.Options.PackageManager == "" {
		return installer.ManagerYarn
	}
	return s.Options.PackageManager
}

func (s *Scaffolder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
