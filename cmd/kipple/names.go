// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// names.go - `kipple names` and `kipple mutations`.

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kipple/evolve"
	"github.com/katalvlaran/kipple/naming"
	"github.com/katalvlaran/kipple/rng"
)

func newNamesCmd() *cobra.Command {
	var (
		seed  int64
		count int
	)
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print names drawn from the naming grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			gen := naming.New(rng.New(seed).Names())
			for range count {
				name, err := gen.Next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed")
	cmd.Flags().IntVarP(&count, "count", "n", 16, "how many names")

	return cmd
}

func newMutationsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "mutations",
		Short: "List the mutation catalog with effective probabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := loadParams(configPath)
			if err != nil {
				return err
			}
			reg, err := evolve.NewRegistry(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleHeading.Render(row("CATEGORY", "P", "MUTATION", "P")))
			for _, c := range evolve.Categories() {
				cp := fmt.Sprint(params.CategoryProbability(c.String()))
				for _, m := range reg.InCategory(c) {
					fmt.Fprintln(out, row(c.String(), cp, m.Name, fmt.Sprint(m.Probability)))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "parameter file (.yaml, .toml or .json)")

	return cmd
}

var (
	wideCol   = lipgloss.NewStyle().Width(16)
	narrowCol = lipgloss.NewStyle().Width(6)
)

func row(category, cp, mutation, mp string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		wideCol.Render(category), narrowCol.Render(cp), wideCol.Render(mutation), mp)
}
