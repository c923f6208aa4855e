// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// watch.go - `kipple watch`: regenerate whenever the parameter file changes.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kipple/config"
)

func newWatchCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch <config>",
		Short: "Regenerate the patch each time the parameter file is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, args[0], cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, yaml or json")

	return cmd
}

// watch generates once, then again on every write to path, until ctx ends.
// A bad file is logged and skipped; the watcher keeps running.
func (a *app) watch(ctx context.Context, path string, out io.Writer, format string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch the directory
	if err = w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	regenerate := func() {
		params, err := config.Load(abs)
		if err != nil {
			a.log.Error().Err(err).Str("file", abs).Msg("parameters rejected")
			return
		}
		if err = a.generate(out, nil, params, format); err != nil {
			a.log.Error().Err(err).Msg("generation failed")
		}
	}
	regenerate()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			a.log.Info().Str("file", abs).Str("op", ev.Op.String()).Msg("parameters changed")
			regenerate()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn().Err(err).Msg("watcher")
		}
	}
}
