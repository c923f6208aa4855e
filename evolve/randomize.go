// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// randomize.go - random controller assignment for new modules.

package evolve

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
)

// randomizeControllers sets a random subset of the module's controllers.
//
//	candidates = sorted controller names minus skip
//	count      = IntRange(0, len(candidates))
//	count times: pick and remove a candidate, assign a value of its type
func randomizeControllers(p *patch.Patch, id patch.ModuleID, s *rng.Stream, skip ...string) error {
	ctls, err := p.Controllers(id)
	if err != nil {
		return err
	}
	byName := make(map[string]patch.Controller, len(ctls))
	names := make([]string, 0, len(ctls))
	for _, c := range ctls {
		if slices.Contains(skip, c.Name) {
			continue
		}
		byName[c.Name] = c
		names = append(names, c.Name)
	}
	sort.Strings(names)

	count := s.IntRange(0, len(names))
	for range count {
		i := s.Intn(len(names))
		name := names[i]
		names = slices.Delete(names, i, i+1)

		if err = p.Set(id, name, randomValue(s, byName[name].Type)); err != nil {
			return fmt.Errorf("randomize %d.%s: %w", id, name, err)
		}
	}

	return nil
}

func randomValue(s *rng.Stream, t patch.ValueType) int {
	switch t.Kind {
	case patch.BoolValue:
		if s.Bool() {
			return 1
		}
		return 0
	case patch.EnumValue:
		if len(t.Members) == 0 {
			return 0
		}
		return s.Intn(len(t.Members))
	default:
		return s.IntRange(t.Min, t.Max)
	}
}
