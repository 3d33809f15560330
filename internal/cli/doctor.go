package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pardjs/create-module/internal/config"
	"github.com/pardjs/create-module/internal/installer"
	"github.com/pardjs/create-module/internal/manifest"
	"github.com/pardjs/create-module/internal/vcs"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools a scaffold run needs are available",
	Long: `Run diagnostic checks on the environment: git, the configured package manager
and its registry, the template source and the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		d := &doctor{out: out}
		settings := config.Current()
		d.checkGit(cmd)
		d.checkPackageManager(cmd, settings.PackageManager)
		d.checkTemplate(settings.Template, settings.TemplateRef)
		d.checkConfigFile()

		if d.failures > 0 {
			return fmt.Errorf("%d check(s) failed", d.failures)
		}
		return nil
	},
}

type doctor struct {
	out      io.Writer
	failures int
}

func (d *doctor) line(tag, format string, args ...any) {
	fmt.Fprintf(d.out, "  [%s] %s\n", tag, fmt.Sprintf(format, args...))
}

func (d *doctor) fail(format string, args ...any) {
	d.failures++
	d.line("MISS", format, args...)
}

func (d *doctor) checkGit(cmd *cobra.Command) {
	fmt.Fprintln(d.out, "Git:")
	version, err := vcs.Version(cmd.Context())
	if err != nil {
		d.fail("%v", err)
		return
	}
	path, _ := exec.LookPath("git")
	d.line(" OK ", "%s at %s", version, path)
	if !vcs.SupportsInitialBranch(version) {
		d.line("WARN", "git older than 2.28 ignores the default_branch setting")
	}
}

func (d *doctor) checkPackageManager(cmd *cobra.Command, name string) {
	fmt.Fprintln(d.out, "Package manager:")
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	report, err := installer.Probe(cmd.Context(), name, wd)
	if err != nil {
		d.fail("%v", err)
		return
	}
	d.line(" OK ", "%s %s", report.Tool, report.Version)
	if report.Registry != "" {
		d.line("INFO", "registry %s", report.Registry)
	}
	for _, w := range report.Warnings {
		d.line("WARN", "%s", w)
	}
}

func (d *doctor) checkTemplate(source, ref string) {
	fmt.Fprintln(d.out, "Template:")
	if source == "" {
		d.fail("no template configured; set one with 'config set %s <url>'", config.KeyTemplate)
		return
	}
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		if _, err := os.Stat(filepath.Join(source, manifest.FileName)); err != nil {
			d.line("WARN", "local template %s has no %s", source, manifest.FileName)
			return
		}
		d.line(" OK ", "local template %s", source)
		return
	}
	if ref != "" {
		d.line(" OK ", "git template %s (ref %s)", source, ref)
		return
	}
	d.line(" OK ", "git template %s", source)
}

func (d *doctor) checkConfigFile() {
	fmt.Fprintln(d.out, "Config:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		d.line("INFO", "no config file at %s, using defaults", path)
		return
	}
	d.line(" OK ", "%s", path)
}

// recommendedFields are reported when missing from a checked manifest.
var recommendedFields = []string{"version", "description", "license"}

func runManifestCheck(out io.Writer, path string) error {
	d, err := manifest.ReadFile(path)
	if err != nil {
		return err
	}
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	result, err := manifest.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	name, ok := d.GetString("name")
	if !ok {
		name = "(unnamed)"
	}
	for _, key := range recommendedFields {
		if _, ok := d.Get(key); !ok {
			fmt.Fprintf(out, "[WARN] %s has no %q field\n", name, key)
		}
	}

	if result.Valid {
		fmt.Fprintf(out, "[ OK ] %s (%s) is valid\n", path, name)
		return nil
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "[FAIL] %s\n", issue)
	}
	return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
}
