package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pardjs/create-module/internal/installer"
	"github.com/pardjs/create-module/internal/interaction"
)

const templatePackageJSON = `{
  "name": "module-template",
  "version": "0.1.0",
  "description": "Template description",
  "license": "MIT",
  "scripts": {"build": "tsc", "test": "jest"}
}
`

// fakeTemplate writes files into the destination, or fails with err.
type fakeTemplate struct {
	files map[string]string
	err   error
	calls int
}

func (f *fakeTemplate) Materialize(_ context.Context, dest string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for rel, content := range f.files {
		path := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

type fakeInstaller struct {
	report *installer.Report
	err    error
	dirs   []string
}

func (f *fakeInstaller) Install(_ context.Context, dir string) (*installer.Report, error) {
	f.dirs = append(f.dirs, dir)
	report := f.report
	if report == nil {
		report = &installer.Report{Tool: "yarn"}
	}
	return report, f.err
}

type fakeRepository struct {
	err  error
	dirs []string
}

func (f *fakeRepository) Initialize(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return f.err
}

type fakePrompter struct {
	confirm      bool
	confirmCalls int
	description  string
	author       string
	inputErr     error
}

func (f *fakePrompter) Confirm(_ string, _ bool) (bool, error) {
	f.confirmCalls++
	return f.confirm, nil
}

func (f *fakePrompter) Inputs(inputs ...interaction.Input) error {
	if f.inputErr != nil {
		return f.inputErr
	}
	for _, in := range inputs {
		switch in.Title {
		case "Description":
			*in.Value = f.description
		case "Author":
			*in.Value = f.author
			if f.author == "" {
				*in.Value = in.Default
			}
		}
	}
	return nil
}

type fakeReporter struct {
	infos, steps, warns, successes []string
}

func (r *fakeReporter) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *fakeReporter) Step(msg string)    { r.steps = append(r.steps, msg) }
func (r *fakeReporter) Warn(msg string)    { r.warns = append(r.warns, msg) }
func (r *fakeReporter) Success(msg string) { r.successes = append(r.successes, msg) }

type testEnv struct {
	s        *Scaffolder
	template *fakeTemplate
	inst     *fakeInstaller
	repo     *fakeRepository
	prompter *fakePrompter
	reporter *fakeReporter
	workDir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	workDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	env := &testEnv{
		template: &fakeTemplate{files: map[string]string{
			"package.json": templatePackageJSON,
			"README.md":    "# module-template\n",
			"src/index.ts": "export {}\n",
		}},
		inst:     &fakeInstaller{},
		repo:     &fakeRepository{},
		prompter: &fakePrompter{confirm: true, description: "A widget", author: "Jane"},
		reporter: &fakeReporter{},
		workDir:  workDir,
	}
	env.s = &Scaffolder{
		Template:   env.template,
		Installer:  env.inst,
		Repository: env.repo,
		Prompter:   env.prompter,
		Reporter:   env.reporter,
		Options: Options{
			WorkDir:              workDir,
			Organization:         "pardjs",
			RepositoryURLPattern: "https://github.com/{organization}/{name}.git",
			PackageManager:       "yarn",
		},
		Now: func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
	}
	return env
}
