// SPDX-License-Identifier: MIT
// Package: kipple/surface
//
// surface.go - fixed-size control surface over a finished patch.
//
// Contract:
//   - Every (module, controller) pair of every non-reserved module is collected
//     in module order, then controller order, and shuffled with the given stream.
//   - Groups groups are always created; each takes up to Slots bindings.
//     Pairs beyond Groups*Slots are dropped.
//   - Each binding owns one MultiCtl module, connected to the target module.
//   - Every group name and label is drawn from the naming generator, group
//     name first, then its labels.

package surface

import (
	"fmt"

	"github.com/katalvlaran/kipple/naming"
	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
)

// Surface dimensions and layout.
const (
	Groups  = 8
	Slots   = 8
	Spacing = 80
	Layer   = 1

	// ValueController is the MultiCtl controller a binding drives.
	ValueController = "value"
	// GainController is the MultiCtl controller holding the mapping gain.
	GainController = "gain"

	// FullScale is the mapping ceiling for controllers without a natural range.
	FullScale = 0x8000
	baseGain  = 256
)

// Binding is one labeled control.
type Binding struct {
	Label            string         `json:"label" yaml:"label"`
	Module           patch.ModuleID `json:"module" yaml:"module"`
	Controller       string         `json:"controller" yaml:"controller"`
	Target           patch.ModuleID `json:"target" yaml:"target"`
	TargetController string         `json:"target_controller" yaml:"target_controller"`
	Mapping          patch.Mapping  `json:"mapping" yaml:"mapping"`
}

// Group is a named set of at most Slots bindings.
type Group struct {
	Name     string    `json:"name" yaml:"name"`
	Bindings []Binding `json:"bindings" yaml:"bindings"`
}

// Surface is the whole control surface.
type Surface struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// Len counts bindings over all groups.
func (s *Surface) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Bindings)
	}
	return n
}

// MappingFor computes the domain and gain for a controller of type t.
//
//	enum of k members:   [0, k-1], gain 256 + 256/(k-1)  (k <= 1: gain 256)
//	bool:                [0, 1],   gain 512
//	range starting at 1: [1, max], gain 256 + 256/max
//	any other range:     [0, 0x8000], gain 256
func MappingFor(t patch.ValueType) patch.Mapping {
	switch t.Kind {
	case patch.EnumValue:
		top := len(t.Members) - 1
		if top < 1 {
			return patch.Mapping{Min: 0, Max: max(top, 0), Gain: baseGain}
		}
		return patch.Mapping{Min: 0, Max: top, Gain: baseGain + baseGain/top}
	case patch.BoolValue:
		return patch.Mapping{Min: 0, Max: 1, Gain: 2 * baseGain}
	default:
		if t.Min == 1 {
			return patch.Mapping{Min: 1, Max: t.Max, Gain: baseGain + baseGain/t.Max}
		}
		return patch.Mapping{Min: 0, Max: FullScale, Gain: baseGain}
	}
}

type entry struct {
	module patch.ModuleID
	ctl    patch.Controller
}

// Generate builds the surface into p.
func Generate(p *patch.Patch, names *naming.Generator, stream *rng.Stream) (*Surface, error) {
	var entries []entry
	for _, m := range p.Modules() {
		if m.ID == patch.OutputID || m.ID == patch.NoteInID {
			continue
		}
		ctls, err := p.Controllers(m.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range ctls {
			entries = append(entries, entry{module: m.ID, ctl: c})
		}
	}
	stream.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

	s := &Surface{Groups: make([]Group, 0, Groups)}
	for g := 0; g < Groups; g++ {
		groupName, err := names.Next()
		if err != nil {
			return nil, fmt.Errorf("surface: group %d: %w", g, err)
		}
		group := Group{Name: groupName}
		for slot := 0; slot < Slots && len(entries) > 0; slot++ {
			e := entries[0]
			entries = entries[1:]

			b, err := bind(p, names, e, g, slot)
			if err != nil {
				return nil, err
			}
			group.Bindings = append(group.Bindings, b)
		}
		s.Groups = append(s.Groups, group)
	}
	return s, nil
}

func bind(p *patch.Patch, names *naming.Generator, e entry, group, slot int) (Binding, error) {
	label, err := names.Next()
	if err != nil {
		return Binding{}, fmt.Errorf("surface: group %d slot %d: %w", group, slot, err)
	}
	mapping := MappingFor(e.ctl.Type)
	mapping.Controller = e.ctl.Index

	multi, err := p.CreateModule(patch.KindMultiCtl,
		patch.WithName(label),
		patch.WithLayer(Layer),
		patch.WithPosition(slot*Spacing, group*Spacing),
		patch.WithMapping(mapping),
		patch.WithValue(GainController, mapping.Gain),
	)
	if err != nil {
		return Binding{}, fmt.Errorf("surface: %w", err)
	}
	if err = p.Connect(multi, e.module); err != nil {
		return Binding{}, fmt.Errorf("surface: %w", err)
	}

	return Binding{
		Label:            label,
		Module:           multi,
		Controller:       ValueController,
		Target:           e.module,
		TargetController: e.ctl.Name,
		Mapping:          mapping,
	}, nil
}
