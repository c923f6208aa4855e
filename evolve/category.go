// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// category.go - mutation categories and category sets.

package evolve

import (
	"slices"
	"strings"

	"github.com/katalvlaran/kipple/config"
)

// Category groups mutations by the structural change they make.
type Category uint8

const (
	Synth Category = iota
	Effect
	Bifurcation
	Termination
	Reunion

	numCategories
)

// String returns the configuration name of c.
func (c Category) String() string {
	if c >= numCategories {
		return "unknown"
	}
	return config.Categories[c]
}

// Categories lists every category in draw order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a configuration name back to its Category.
func ParseCategory(name string) (Category, bool) {
	i := slices.Index(config.Categories, name)
	if i < 0 || i >= int(numCategories) {
		return 0, false
	}
	return Category(i), true
}

// CategorySet is a bitmask of categories.
type CategorySet uint8

// Set builds a CategorySet from cs.
func Set(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// Has reports whether c is in s.
func (s CategorySet) Has(c Category) bool { return s&(1<<c) != 0 }

// Add returns s with c included.
func (s CategorySet) Add(c Category) CategorySet { return s | 1<<c }

// Empty reports whether s has no members.
func (s CategorySet) Empty() bool { return s == 0 }

// Categories lists the members of s in draw order.
func (s CategorySet) Categories() []Category {
	var out []Category
	for c := Category(0); c < numCategories; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders s as "{effect,reunion}".
func (s CategorySet) String() string {
	names := make([]string, 0, numCategories)
	for _, c := range s.Categories() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
