package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rfielding/kripke-ltl/handle"
	"github.com/rfielding/kripke-ltl/internal/config"
	"github.com/rfielding/kripke-ltl/ltl"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build and print the sample formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			opts := []handle.Option{handle.WithLogger(logger), handle.WithMetrics(handle.NewMetrics(reg))}
			out := cmd.OutOrStdout()

			if cfg.Labels == config.LabelsCode {
				r := handle.NewCodeRegistry(opts...)
				err = printExamples(out, cfg, r.Registry, codeExamples(r), r.IsTrue)
			} else {
				r := handle.NewNameRegistry(opts...)
				err = printExamples(out, cfg, r, nameExamples(r), nil)
			}
			if err != nil {
				return err
			}
			if cfg.Metrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
}

func printExamples[L ltl.Label](out io.Writer, cfg config.Config, r *handle.Registry[L], examples []example, isTrue func(handle.Handle) (bool, error)) error {
	fmt.Fprintf(out, "=== LTL formulas (%s labels) ===\n\n", cfg.Labels)
	for _, ex := range examples {
		if err := printExample(out, cfg, r, ex, isTrue); err != nil {
			return fmt.Errorf("%s: %w", ex.name, err)
		}
	}
	return nil
}

// printExample builds one example, prints it and releases every handle
// the build created.
func printExample[L ltl.Label](out io.Writer, cfg config.Config, r *handle.Registry[L], ex example, isTrue func(handle.Handle) (bool, error)) (err error) {
	var s scratch
	defer func() {
		for _, h := range s.handles {
			if rerr := r.Release(h); rerr != nil && err == nil {
				err = rerr
			}
		}
	}()

	h, err := s.keep(ex.build(&s))
	if err != nil {
		return err
	}
	f, err := r.Formula(h)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatDot {
		fmt.Fprintf(out, "// %s\n%s\n", ex.name, ltl.Dot(f))
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", ex.name, f)
	fmt.Fprintf(out, "  size=%d depth=%d\n", ltl.Size(f), ltl.Depth(f))
	if isTrue != nil {
		v, err := isTrue(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  is_true=%v\n", v)
	}
	return nil
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(out, "\n=== Registry metrics ===")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels string
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			value := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}
			fmt.Fprintf(out, "  %s%s %g\n", mf.GetName(), labels, value)
		}
	}
	return nil
}
