package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pardjs/create-module/internal/branding"
	"github.com/pardjs/create-module/internal/config"
	"github.com/pardjs/create-module/internal/installer"
	"github.com/pardjs/create-module/internal/interaction"
	"github.com/pardjs/create-module/internal/scaffold"
	"github.com/pardjs/create-module/internal/template"
	"github.com/pardjs/create-module/internal/ui"
	"github.com/pardjs/create-module/internal/vcs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	assumeYes   bool
	skipInstall bool
	skipGit     bool
	verbose     bool
	noEmoji     bool
)

// flagKeys maps root flags onto config keys so a flag given on the command
// line overrides the config file and environment.
var flagKeys = map[string]string{
	"template":        config.KeyTemplate,
	"template-ref":    config.KeyTemplateRef,
	"org":             config.KeyOrganization,
	"author":          config.KeyAuthor,
	"package-manager": config.KeyPackageManager,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&assumeYes, "yes", "y", false, "Accept defaults and skip all prompts")
	f.String("template", "", "Template git URL or local directory")
	f.String("template-ref", "", "Branch or tag to clone from a remote template")
	f.String("org", "", "npm organization used to scope the package name")
	f.String("author", "", "Default author offered in the metadata prompt")
	f.String("package-manager", "", "Package manager used to install dependencies (yarn, npm)")
	f.BoolVar(&skipInstall, "skip-install", false, "Do not install dependencies")
	f.BoolVar(&skipGit, "skip-git", false, "Do not initialize a git repository")
	f.BoolVar(&noEmoji, "no-emoji", false, "Use plain text status prefixes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new module from the project template: it copies the
template, fills in package.json and README.md, installs dependencies and
records the initial git commit.`,
	Example:       "  " + branding.CLIName() + " my-lib\n  " + branding.CLIName() + " my-lib --yes --skip-install",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd.ErrOrStderr(), verbose)
		config.Load()
		return bindFlags(cmd.Flags())
	},
	RunE: runScaffold,
}

// Execute runs the root command with build info injected via ldflags. The
// returned error has already been reported to the user.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console := ui.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		console.EmojiEnabled = !noEmoji
		console.Error(err.Error())
	}
	return err
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if fl := flags.Lookup(name); fl != nil {
			if err := viper.BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}
	return nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	console := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	console.EmojiEnabled = !noEmoji

	settings := config.Current()
	slog.Debug("resolved settings", "settings", settings)

	s := newScaffolder(settings, console, interaction.New(!assumeYes))
	res, err := s.Run(cmd.Context(), args[0])
	if errors.Is(err, scaffold.ErrAborted) {
		console.Info(fmt.Sprintf("Aborted. %s was left unchanged.", ui.Accent(res.Destination)))
		return nil
	}
	return err
}

// newScaffolder wires the production collaborators for one run.
func newScaffolder(settings config.Settings, console *ui.Console, prompter interaction.Prompter) *scaffold.Scaffolder {
	return &scaffold.Scaffolder{
		Template:  template.Select(settings.Template, settings.TemplateRef),
		Installer: installer.DispatchInstaller(settings.PackageManager, console.Out, console.Err),
		Repository: &vcs.Git{
			CommitMessage: settings.CommitMessage,
			InitialBranch: settings.DefaultBranch,
		},
		Prompter: prompter,
		Reporter: console,
		Options: scaffold.Options{
			Organization:         settings.Organization,
			RepositoryURLPattern: settings.RepositoryURLPattern,
			DefaultAuthor:        settings.Author,
			PackageManager:       settings.PackageManager,
			SkipInstall:          skipInstall,
			SkipGit:              skipGit,
		},
	}
}
