// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// behavior.go - module capability set.

package patch

import "strings"

// Behavior is one module capability.
type Behavior uint8

// Capabilities a module kind may expose.
const (
	SendsAudio Behavior = 1 << iota
	ReceivesAudio
	SendsNotes
	ReceivesNotes
	SendsControls
)

var behaviorNames = []struct {
	b    Behavior
	name string
}{
	{SendsAudio, "sends_audio"},
	{ReceivesAudio, "receives_audio"},
	{SendsNotes, "sends_notes"},
	{ReceivesNotes, "receives_notes"},
	{SendsControls, "sends_controls"},
}

// BehaviorSet is a bitmask of Behavior values. The zero value is the empty set.
type BehaviorSet uint8

// Behaviors builds a set from individual capabilities.
func Behaviors(bs ...Behavior) BehaviorSet {
	var s BehaviorSet
	for _, b := range bs {
		s |= BehaviorSet(b)
	}
	return s
}

// Has reports membership of b.
func (s BehaviorSet) Has(b Behavior) bool { return s&BehaviorSet(b) != 0 }

// Empty reports whether no capability is set.
func (s BehaviorSet) Empty() bool { return s == 0 }

// Names lists the capabilities in declaration order.
func (s BehaviorSet) Names() []string {
	var out []string
	for _, bn := range behaviorNames {
		if s.Has(bn.b) {
			out = append(out, bn.name)
		}
	}
	return out
}

func (s BehaviorSet) String() string {
	if s.Empty() {
		return "{}"
	}
	return "{" + strings.Join(s.Names(), ",") + "}"
}
