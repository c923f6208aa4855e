// SPDX-License-Identifier: MIT
// Package: kipple/naming
//
// grammar.go - fragment tables and name structures.

package naming

// Fragment is one word-fragment category.
type Fragment int

const (
	Head Fragment = iota
	Tail
	Stem
	Coda
)

// Slot is one position of a Structure: either a literal separator or a fragment category.
type Slot struct {
	Literal  string
	Fragment Fragment
}

// Structure is an ordered list of slots; a name is the concatenation of its filled slots.
type Structure []Slot

var fragments = [...][]string{
	Head: {"pen", "tao", "uber", "angul", "baron", "zarg", "yes", "no", "hero", "oct", "touch",
		"scene", "arp", "chord", "scale", "sus", "garn", "con", "eff", "sync", "super", "meta"},
	Tail: {"ultimate", "ish", "istic", "tronic", "ating", "onomous", "alpha", "betron", "thespa",
		"ave", "scale", "scene", "pad", "trol", "fect", "sync"},
	Stem: {"zes", "transmob", "farn", "garb", "sonos", "chronos", "mab", "sort", "port", "part",
		"suss", "pitch", "shift", "easy", "master", "zono", "ren", "part", "hyper", "sub"},
	Coda: {"ticulator", "ulator", "system", "ule", "ran", "icle", "ishment", "erator", "stin",
		"tain", "mod", "tap", "guide", "master", "plasty", "ticular"},
}

var (
	h   = Slot{Fragment: Head}
	t   = Slot{Fragment: Tail}
	s   = Slot{Fragment: Stem}
	c   = Slot{Fragment: Coda}
	sep = Slot{Literal: "_"}
)

// Structures is the fixed template set.
var Structures = []Structure{
	{h, t, sep, s, c},
	{h, c, sep, s, t},
	{s, c, sep, h, t},
	{s, t, sep, h, c},
	{h, sep, h, t},
	{h, sep, h, c},
	{h, sep, s, t},
	{h, sep, s, c},
	{s, sep, h, t},
	{s, sep, h, c},
	{s, sep, s, t},
	{s, sep, s, c},
	{h, t, sep, h},
	{h, c, sep, h},
	{s, t, sep, h},
	{s, c, sep, h},
	{h, t, sep, s},
	{h, c, sep, s},
	{s, t, sep, s},
	{s, c, sep, s},
	{h, t},
	{s, c},
	{h, c},
	{s, t},
}

// Fragments returns a copy of the fragment table for category f.
func Fragments(f Fragment) []string {
	return append([]string(nil), fragments[f]...)
}
