// Package commands implements the CLI commands for pkgfetch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgfetch/internal/build"
	"go.trai.ch/pkgfetch/internal/core/domain"
)

// CLI represents the command line interface for pkgfetch.
type CLI struct {
	app     Application
	logs    LogConfigurator
	rootCmd *cobra.Command
	global  globalFlags
}

// Application represents the application logic interface.
type Application interface {
	Fetch(ctx context.Context, names []string, opts domain.FetchOptions) error
}

// LogConfigurator is implemented by loggers whose output can be tuned from flags.
type LogConfigurator interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
}

type globalFlags struct {
	root             string
	repositoriesFile string
	repositories     []string
	noCache          bool
	simulate         bool
	verbose          int
	quiet            bool
	json             bool
}

// verbosity folds -v and -q into one counter.
func (g *globalFlags) verbosity() int {
	if g.quiet {
		return g.verbose - 1
	}
	return g.verbose
}

func (g *globalFlags) databaseOptions() domain.DatabaseOptions {
	opts := domain.DatabaseOptions{
		Root:             g.root,
		RepositoriesFile: g.repositoriesFile,
		Repositories:     g.repositories,
	}
	if g.noCache {
		opts.Flags |= domain.OpenNoCache
	}
	return opts
}

// New creates a new CLI instance with the given app.
// logs may be nil, in which case the logging flags have no effect.
func New(a Application, logs LogConfigurator) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgfetch",
		Short:         "Download package artifacts from configured repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// cobra adds --version on execute; -v stays with --verbose.
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.global.root, "root", "p", domain.DefaultRoot, "Root directory for configuration and cache")
	pf.StringVar(&c.global.repositoriesFile, "repositories-file", "",
		"Repositories file (default <root>/etc/pkgfetch/repositories.yaml)")
	pf.StringArrayVarP(&c.global.repositories, "repository", "X", nil, "Use an additional repository")
	pf.BoolVar(&c.global.noCache, "no-cache", false, "Do not read or write the index cache")
	pf.BoolVar(&c.global.simulate, "simulate", false, "Show what would be fetched without downloading")
	pf.CountVarP(&c.global.verbose, "verbose", "v", "Print more information (repeatable)")
	pf.BoolVarP(&c.global.quiet, "quiet", "q", false, "Print less information")
	pf.BoolVar(&c.global.json, "json", false, "Write logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.configureLogs()
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogs() {
	if c.logs == nil {
		return
	}
	c.logs.SetJSON(c.global.json)
	c.logs.SetLevel(domain.LogLevelForVerbosity(c.global.verbosity()))
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
