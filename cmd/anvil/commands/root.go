// Package commands implements the CLI commands for the anvil build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/anvil/internal/adapters/config"
	"go.trai.ch/anvil/internal/build"
	"go.trai.ch/anvil/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Configure(s domain.Settings)
	Build(ctx context.Context, s domain.Settings) error
	Clean(ctx context.Context, s domain.Settings, all bool) error
	Watch(ctx context.Context, s domain.Settings) error
	Compiler(ctx context.Context, s domain.Settings) (domain.Compiler, error)
}

// CLI represents the command line interface for anvil.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	settings domain.Settings
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "anvil",
		Short:         "An incremental build orchestrator for C and C++ projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	addSettingsFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		s, err := config.LoadSettings(domain.DefaultSettingsFile, cmd.Flags())
		if err != nil {
			return err
		}
		c.settings = s
		c.app.Configure(s)
		return nil
	}
	// Running anvil without a subcommand builds.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Build(cmd.Context(), c.settings)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCompilerCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func addSettingsFlags(fs *pflag.FlagSet) {
	d := domain.DefaultSettings()
	fs.StringP("manifest", "m", d.Manifest, "Path to the project manifest")
	fs.String("build-dir", d.BuildDir, "Build directory, relative to the manifest")
	fs.IntP("jobs", "j", d.Jobs, "Number of parallel commands (0 uses one per CPU)")
	fs.String("compiler", d.Compiler, "C++ compiler to use instead of the detected one")
	fs.String("color", string(d.Color), "Colorize progress output: auto, always or never")
	fs.BoolP("verbose", "v", d.Verbose, "Log up-to-date units and executed commands")
	fs.String("log-format", string(d.LogFormat), "Log format: pretty or json")
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
