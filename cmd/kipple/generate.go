// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// generate.go - `kipple generate`.

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/evolve"
	"github.com/katalvlaran/kipple/metrics"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		configPath  string
		seed        int64
		format      string
		withMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one patch and print it",
		Example: `  kipple generate --seed 42
  kipple generate --config kipple.toml --format yaml > patch.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			params, err := loadParams(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				params.Seed = seed
			}
			var metricsOut io.Writer
			if withMetrics {
				metricsOut = cmd.ErrOrStderr()
			}
			return a.generate(cmd.OutOrStdout(), metricsOut, params, format)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "parameter file (.yaml, .toml or .json)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed, overrides the config file")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, yaml or json")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "print run metrics to stderr")

	return cmd
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (text, yaml, json)", format)
	}
}

// generate runs one generation and writes the result to out. Metrics go to
// metricsOut when it is non-nil.
func (a *app) generate(out, metricsOut io.Writer, params config.Params, format string) error {
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	g, err := evolve.New(params, evolve.WithLogger(a.log), evolve.WithRecorder(col))
	if err != nil {
		return err
	}
	res, err := g.Run()
	if err != nil {
		return err
	}

	switch format {
	case formatText:
		totals, err := metrics.Totals(reg)
		if err != nil {
			return err
		}
		if err = renderSummary(out, res, totals); err != nil {
			return err
		}
	default:
		if err = writeSnapshot(out, res, format); err != nil {
			return err
		}
	}

	if metricsOut != nil {
		return metrics.WriteText(metricsOut, reg)
	}
	return nil
}

func writeSnapshot(w io.Writer, res *evolve.Result, format string) error {
	snap, err := res.Snapshot()
	if err != nil {
		return err
	}
	var raw []byte
	if format == formatJSON {
		raw, err = snap.JSON()
		raw = append(raw, '\n')
	} else {
		raw, err = snap.YAML()
	}
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
