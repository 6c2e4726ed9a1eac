package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartroute/config"
)

const (
	envConfig   = "CARTROUTE_CONFIG"
	envLogLevel = "CARTROUTE_LOG_LEVEL"
)

var errNoConfig = errors.New("no config: pass --config or set " + envConfig)

// app carries flag values shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cartroute",
		Short:         "Plan delivery cart routes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := config.ParseLevel(a.logLevel)
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", getEnv(envConfig, ""), "deployment YAML file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", getEnv(envLogLevel, "warn"), "debug, info, warn or error")

	root.AddCommand(newPlanCmd(a), newMatrixCmd(a), newEntriesCmd(a))

	return root
}

// load reads the deployment file.
func (a *app) load() (*config.Config, error) {
	if a.configPath == "" {
		return nil, errNoConfig
	}

	return config.Load(a.configPath)
}
