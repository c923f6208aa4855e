// SPDX-License-Identifier: MIT
// Package: kipple/cmd/kipple
//
// render.go - human-readable run summary.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/kipple/evolve"
	"github.com/katalvlaran/kipple/metrics"
	"github.com/katalvlaran/kipple/patch"
)

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#2C4A54")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

func renderSummary(w io.Writer, res *evolve.Result, totals map[string]float64) error {
	loops, err := res.Patch.FeedbackLoops()
	if err != nil {
		return err
	}
	sinks, err := res.Patch.Inputs(patch.OutputID)
	if err != nil {
		return err
	}
	order, err := res.Patch.Order()
	if err != nil {
		return err
	}
	depths, err := res.Patch.Depths()
	if err != nil {
		return err
	}
	back, err := res.Patch.FeedbackEdges()
	if err != nil {
		return err
	}

	var head strings.Builder
	fmt.Fprintln(&head, styleTitle.Render(res.Patch.Name()))
	fmt.Fprintf(&head, "run      %s\n", res.ID)
	fmt.Fprintf(&head, "seed     %d\n", res.Params.Seed)
	fmt.Fprintf(&head, "modules  %d (target %d)\n", res.Grown, res.Target)
	fmt.Fprintf(&head, "tracks   %d\n", len(res.Tracks))
	fmt.Fprintf(&head, "links    %d, %d feedback loops, %d into output\n", len(res.Patch.Connections()), len(loops), len(sinks))
	fmt.Fprintf(&head, "controls %d", res.Surface.Len())
	if _, err = fmt.Fprintln(w, styleBox.Render(head.String())); err != nil {
		return err
	}

	var body strings.Builder
	fmt.Fprintln(&body, styleHeading.Render("modules"))
	for _, id := range order {
		m, _ := res.Patch.Module(id)
		if m.Kind == patch.KindMultiCtl {
			continue
		}
		depth := "-"
		if d, ok := depths[id]; ok {
			depth = fmt.Sprint(d)
		}
		ins, _ := res.Patch.Inputs(id)
		fmt.Fprintf(&body, "  %3d  %-16s %2s %s\n", id, m.Kind, depth, styleMuted.Render(fmt.Sprintf("<- %v", ins)))
	}
	if path, err := res.Patch.SignalPath(patch.OutputID); err == nil {
		fmt.Fprintf(&body, "  path %s\n", styleMuted.Render(fmt.Sprint(path)))
	}
	for _, e := range back {
		fmt.Fprintf(&body, "  feedback %d -> %d\n", e.From, e.To)
	}

	fmt.Fprintln(&body, styleHeading.Render("tracks"))
	for _, t := range res.Tracks {
		state := "open"
		if t.Finished {
			state = "finished"
		}
		fmt.Fprintf(&body, "  %3d  from %-3d %-8s %v\n", t.ID, t.Ancestor, state, t.Modules)
	}

	fmt.Fprintln(&body, styleHeading.Render("surface"))
	for _, g := range res.Surface.Groups {
		fmt.Fprintf(&body, "  %s\n", g.Name)
		for _, b := range g.Bindings {
			target, _ := res.Patch.Module(b.Target)
			fmt.Fprintf(&body, "    %-28s %s.%s %s\n", b.Label, target.Kind, b.TargetController,
				styleMuted.Render(fmt.Sprintf("[%d..%d] x%d", b.Mapping.Min, b.Mapping.Max, b.Mapping.Gain)))
		}
	}

	if len(totals) > 0 {
		fmt.Fprintln(&body, styleHeading.Render("metrics"))
		for _, k := range metrics.SortedKeys(totals) {
			fmt.Fprintf(&body, "  %-40s %g\n", k, totals[k])
		}
	}

	_, err = io.WriteString(w, body.String())
	return err
}
