package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"companydir/pkg/client"
	"companydir/pkg/config"
)

// app carries the global flags and the resources built from them.
type app struct {
	apiURL  string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	client *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "directory",
		Short: "Browse the company directory",
		Long: `directory reads companies from the directory API and renders them in
the terminal: a filterable table, company details, insight charts and an
interactive browser.

The API base URL comes from --api or DIRECTORY_API_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "Directory API base URL (default from DIRECTORY_API_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "Request timeout")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(a.listCmd())
	root.AddCommand(a.showCmd())
	root.AddCommand(a.insightsCmd())
	root.AddCommand(a.browseCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if a.apiURL == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.apiURL = cfg.APIURL
	}

	a.client = client.New(a.apiURL, client.WithTimeout(a.timeout))
	a.logger.Debug("directory client ready", zap.String("api", a.apiURL), zap.Duration("timeout", a.timeout))
	return nil
}
