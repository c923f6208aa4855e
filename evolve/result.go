// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// result.go - outcome of a Run and its serializable snapshot.

package evolve

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/surface"
)

// runNamespace scopes run IDs so that equal parameters give equal IDs.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("kipple.run"))

// TrackInfo is a frozen view of one track.
type TrackInfo struct {
	ID        TrackID          `json:"id" yaml:"id"`
	Ancestor  TrackID          `json:"ancestor" yaml:"ancestor"`
	Fork      *patch.ModuleID  `json:"fork,omitempty" yaml:"fork,omitempty"`
	Modules   []patch.ModuleID `json:"modules" yaml:"modules,flow"`
	Tail      patch.ModuleID   `json:"tail" yaml:"tail"`
	Finished  bool             `json:"finished" yaml:"finished"`
	Supported string           `json:"supported" yaml:"supported"`
}

// Result is the outcome of one Run. Treat it as read-only.
type Result struct {
	ID      uuid.UUID
	Params  config.Params
	Target  int
	Grown   int // module count when growth stopped, surface excluded
	Patch   *patch.Patch
	Surface *surface.Surface
	Tracks  []TrackInfo
}

func newResult(params config.Params, target, grown int, p *patch.Patch, s *surface.Surface, a *Arena) *Result {
	tracks := make([]TrackInfo, 0, a.Len())
	for _, t := range a.Tracks() {
		tail, _ := t.Tail()
		var fork *patch.ModuleID
		if f, ok := t.Fork(); ok {
			fork = &f
		}
		tracks = append(tracks, TrackInfo{
			ID:        t.ID(),
			Ancestor:  t.Ancestor(),
			Fork:      fork,
			Modules:   t.Mods(),
			Tail:      tail,
			Finished:  t.Finished(),
			Supported: t.SupportedMutations().String(),
		})
	}
	return &Result{
		ID:      RunID(params),
		Params:  params,
		Target:  target,
		Grown:   grown,
		Patch:   p,
		Surface: s,
		Tracks:  tracks,
	}
}

// RunID derives the deterministic identifier of a run over params.
func RunID(params config.Params) uuid.UUID {
	return uuid.NewSHA1(runNamespace, []byte(params.Fingerprint()+"/"+strconv.FormatInt(params.Seed, 10)))
}

// ModuleView is the serialized form of a module.
type ModuleView struct {
	ID       patch.ModuleID `json:"id" yaml:"id"`
	Kind     string         `json:"kind" yaml:"kind"`
	Name     string         `json:"name" yaml:"name"`
	Depth    *int           `json:"depth,omitempty" yaml:"depth,omitempty"` // hops from the note input
	Layer    int            `json:"layer,omitempty" yaml:"layer,omitempty"`
	Position patch.Position `json:"position" yaml:"position,flow"`
	Values   map[string]int `json:"values,omitempty" yaml:"values,omitempty"`
	Mapping  *patch.Mapping `json:"mapping,omitempty" yaml:"mapping,omitempty,flow"`
}

// Snapshot is a self-contained copy of a Result for encoding.
type Snapshot struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	Seed          int64              `json:"seed" yaml:"seed"`
	Target        int                `json:"target" yaml:"target"`
	Grown         int                `json:"grown" yaml:"grown"`
	Modules       []ModuleView       `json:"modules" yaml:"modules"`
	Connections   []patch.Connection `json:"connections" yaml:"connections,flow"`
	FeedbackLoops [][]patch.ModuleID `json:"feedback_loops" yaml:"feedback_loops,flow"`
	FeedbackEdges []patch.Connection `json:"feedback_edges" yaml:"feedback_edges,flow"`
	Tracks        []TrackInfo        `json:"tracks" yaml:"tracks"`
	Surface       surface.Surface    `json:"surface" yaml:"surface"`
}

// Snapshot copies r into its serializable form.
func (r *Result) Snapshot() (Snapshot, error) {
	loops, err := r.Patch.FeedbackLoops()
	if err != nil {
		return Snapshot{}, fmt.Errorf("Snapshot: %w", err)
	}
	back, err := r.Patch.FeedbackEdges()
	if err != nil {
		return Snapshot{}, fmt.Errorf("Snapshot: %w", err)
	}
	depths, err := r.Patch.Depths()
	if err != nil {
		return Snapshot{}, fmt.Errorf("Snapshot: %w", err)
	}
	mods := r.Patch.Modules()
	views := make([]ModuleView, len(mods))
	for i, m := range mods {
		var depth *int
		if d, ok := depths[m.ID]; ok {
			depth = &d
		}
		views[i] = ModuleView{
			ID:       m.ID,
			Kind:     m.Kind,
			Name:     m.Name,
			Depth:    depth,
			Layer:    m.Layer,
			Position: m.Position,
			Values:   m.Values,
			Mapping:  m.Mapping,
		}
	}
	tracks := make([]TrackInfo, len(r.Tracks))
	for i, t := range r.Tracks {
		t.Modules = append([]patch.ModuleID(nil), t.Modules...)
		tracks[i] = t
	}
	surf := surface.Surface{Groups: make([]surface.Group, len(r.Surface.Groups))}
	for i, g := range r.Surface.Groups {
		surf.Groups[i] = surface.Group{Name: g.Name, Bindings: append([]surface.Binding(nil), g.Bindings...)}
	}

	return Snapshot{
		ID:            r.ID.String(),
		Name:          r.Patch.Name(),
		Seed:          r.Params.Seed,
		Target:        r.Target,
		Grown:         r.Grown,
		Modules:       views,
		Connections:   r.Patch.Connections(),
		FeedbackLoops: loops,
		FeedbackEdges: back,
		Tracks:        tracks,
		Surface:       surf,
	}, nil
}

// YAML encodes s.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// JSON encodes s with two-space indentation.
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
