// Package commands implements the CLI commands for keydiff.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/keydiff/internal/app"
	"go.trai.ch/keydiff/internal/build"
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes the environment variables mirroring each flag.
const EnvPrefix = "KEYDIFF"

const (
	flagIgnoreFile    = "ignore-file"
	flagOutput        = "output"
	flagVerbose       = "verbose"
	flagLogJSON       = "log-json"
	flagSearchPattern = "search-pattern"
)

// CLI represents the command line interface for keydiff.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	cfg     *viper.Viper
	envFile string
}

// Application represents the application logic interface.
type Application interface {
	Compare(ctx context.Context, opts app.CompareOptions) (*domain.Report, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "keydiff",
		Short:         "Find top-level keys missing between JSON files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().StringP(flagIgnoreFile, "i", domain.DefaultIgnoreFile, "Path to the ignore rules file")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", string(domain.FormatText), "Output format (text or json)")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Print phase timings on stderr")
	rootCmd.PersistentFlags().Bool(flagLogJSON, false, "Write log lines as JSON")

	// Registered after the persistent flags so --version does not claim -v.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	cfg := viper.New()
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		cfg:     cfg,
		envFile: ".env",
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.loadConfig(cmd)
	}

	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newFolderCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetEnvFile overrides the dotenv file read before each command. Empty disables it.
func (c *CLI) SetEnvFile(path string) {
	c.envFile = path
}

// loadConfig reads the dotenv file and binds the flags of cmd, so a value is taken
// from the flag, then KEYDIFF_* variables, then the default.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to load environment file"), "path", c.envFile)
		}
	}
	return c.cfg.BindPFlags(cmd.Flags())
}

// compareOptions builds the options shared by every comparing command.
func (c *CLI) compareOptions(cmd *cobra.Command) (app.CompareOptions, error) {
	format, err := domain.ParseOutputFormat(c.cfg.GetString(flagOutput))
	if err != nil {
		return app.CompareOptions{}, err
	}

	return app.CompareOptions{
		IgnoreFile: c.cfg.GetString(flagIgnoreFile),
		Format:     format,
		Output:     cmd.OutOrStdout(),
		Verbose:    c.cfg.GetBool(flagVerbose),
		LogJSON:    c.cfg.GetBool(flagLogJSON),
	}, nil
}
