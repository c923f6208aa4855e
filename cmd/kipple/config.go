// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// config.go - `kipple config init|validate`.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/evolve"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check parameter files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter parameter file (format from the extension)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "kipple.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Load a parameter file and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if _, err = evolve.NewRegistry(params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s (run %s)\n", args[0], evolve.RunID(params))
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
