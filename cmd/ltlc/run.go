package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rfielding/kripke-ltl/handle"
	"github.com/rfielding/kripke-ltl/internal/config"
	"github.com/rfielding/kripke-ltl/internal/script"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "Execute a YAML construction script",
		Long: `Execute a YAML construction script against a fresh handle registry.

Each step builds a formula from earlier steps, renders or tests one, or
releases one:

  steps:
    - {id: a, atomic: A}
    - {id: b, atomic: B}
    - {id: ab, conjunction: [a, b]}
    - render: ab`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}
			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			opts := []handle.Option{handle.WithLogger(logger), handle.WithMetrics(handle.NewMetrics(reg))}

			var rn *script.Runner
			if cfg.Labels == config.LabelsCode {
				rn = script.NewCodeRunner(handle.NewCodeRegistry(opts...), logger)
			} else {
				rn = script.NewNameRunner(handle.NewNameRegistry(opts...), logger)
			}

			results, runErr := rn.Run(s)
			out := cmd.OutOrStdout()
			for _, res := range results {
				switch {
				case res.Op == "is_true":
					fmt.Fprintf(out, "%s: %v\n", res.Target, res.Value)
				case cfg.Format == config.FormatDot:
					fmt.Fprintf(out, "// %s\n%s\n", res.Target, res.Dot)
				default:
					fmt.Fprintf(out, "%s: %s\n", res.Target, res.Text)
				}
			}
			if runErr != nil {
				logger.Error("script failed", "script", args[0], "error", runErr)
				return runErr
			}
			if cfg.Metrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
}
