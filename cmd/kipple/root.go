// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// root.go - command tree and shared state.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/logging"
)

// app carries state shared by every subcommand.
type app struct {
	log      zerolog.Logger
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "kipple",
		Short: "Seeded generative patch builder",
		Long: `kipple grows a modular synthesizer patch from a single note input:
synths, effects, branches and merges are chosen by seeded random mutation,
then a control surface of 8 groups x 8 knobs is wired over the result.
The same parameters always produce the same patch.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logging.FromEnv(logging.ProfileRuntime)
			if a.logLevel != "" {
				lvl, ok := logging.ParseLevel(a.logLevel)
				if !ok {
					return fmt.Errorf("unknown log level %q", a.logLevel)
				}
				cfg.Level = lvl
			}
			cfg.JSON = cfg.JSON || a.logJSON
			a.log = logging.New(cmd.ErrOrStderr(), cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write JSON log records")

	root.AddCommand(
		newGenerateCmd(a),
		newNamesCmd(),
		newMutationsCmd(),
		newConfigCmd(),
		newWatchCmd(a),
	)
	return root
}

// loadParams returns the defaults, or the file at path overlaid on them.
func loadParams(path string) (config.Params, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
