package main

import (
	"loan-crm/internal/app"
	"loan-crm/internal/config"
	"loan-crm/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type buildFunc func(verbose bool) (*app.App, error)

// commandContext builds the App per command so that --help never
// touches the database.
type commandContext struct {
	build   buildFunc
	verbose bool
}

// withApp builds the App, runs fn and closes the App whether or not fn
// fails.
func (c *commandContext) withApp(fn func(a *app.App) error) error {
	a, err := c.build(c.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}

func buildFromEnv(verbose bool) (*app.App, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := zap.NewNop()
	if verbose {
		l, err := logger.New(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log = l
	}
	return app.New(cfg, log)
}

func newRootCommand(build buildFunc) *cobra.Command {
	if build == nil {
		build = buildFromEnv
	}
	ctx := &commandContext{build: build}

	rootCmd := &cobra.Command{
		Use:           "crmctl",
		Short:         "Loan CRM operator tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Write JSON logs to stdout")

	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newSetupAdminCommand(ctx))
	return rootCmd
}
