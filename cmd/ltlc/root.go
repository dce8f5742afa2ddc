package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rfielding/kripke-ltl/internal/config"
	"github.com/rfielding/kripke-ltl/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ltlc",
		Short:         "ltlc builds and renders Linear Temporal Logic formulas",
		Long:          `ltlc composes LTL formulas through the handle boundary and prints their text or Graphviz form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "ltlc.yaml", "Path to the YAML config file")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("labels", "", "Label type: name or code")
	cmd.PersistentFlags().String("format", "", "Output format: text or dot")
	cmd.PersistentFlags().Bool("metrics", false, "Print registry metrics after the run")

	cmd.AddCommand(newDemoCmd(), newRunCmd(), newVersionCmd())
	return cmd
}

// settings resolves the config file and applies flag overrides.
func settings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("labels") {
		cfg.Labels, _ = flags.GetString("labels")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("config: %w", err)
	}
	return cfg, logging.New(level), nil
}
