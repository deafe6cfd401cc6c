// Package commands implements the hamroute command tree.
package commands

import (
	"context"
	"io"

	"github.com/katalvlaran/hamroute/internal/config"
	"github.com/katalvlaran/hamroute/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// CLI represents the command line interface for hamroute.
type CLI struct {
	rootCmd *cobra.Command
	v       *viper.Viper

	// populated by the persistent pre-run hook
	cfg config.Config
	log *zap.Logger
}

// New creates a CLI with the solve and version commands attached.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "hamroute",
		Short:         "Exact shortest and longest routes visiting every location once",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		rootCmd: rootCmd,
		v:       config.NewViper(),
		log:     zap.NewNop(),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to configuration file (default ./hamroute.yaml when present)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	_ = c.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.PersistentPreRunE = c.loadConfig
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = c.log.Sync()
	}

	rootCmd.AddCommand(c.newSolveCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// loadConfig resolves configuration and builds the logger before any
// subcommand runs.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.v, path)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	c.cfg, c.log = cfg, log
	c.log.Debug("configuration loaded",
		zap.String("file", c.v.ConfigFileUsed()),
		zap.Int("parallel", cfg.Solver.Parallel),
		zap.Bool("shared_memo", cfg.Solver.SharedMemo))

	return nil
}

// Config returns the configuration resolved by the last run.
func (c *CLI) Config() config.Config {
	return c.cfg
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

// SetOutput redirects command output and cobra's own error/usage text.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
