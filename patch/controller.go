// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// controller.go - controller descriptors and their value types.

package patch

import "fmt"

// ValueKind discriminates ValueType.
type ValueKind uint8

const (
	// RangeValue is a bounded integer [Min, Max].
	RangeValue ValueKind = iota
	// BoolValue is 0 or 1.
	BoolValue
	// EnumValue is a member index into Members.
	EnumValue
)

// ValueType declares which values a controller accepts.
type ValueType struct {
	Kind    ValueKind
	Min     int
	Max     int
	Members []string
}

// Range declares a bounded integer controller.
func Range(lo, hi int) ValueType {
	return ValueType{Kind: RangeValue, Min: lo, Max: hi}
}

// Bool declares an on/off controller.
func Bool() ValueType {
	return ValueType{Kind: BoolValue, Min: 0, Max: 1}
}

// Enum declares a controller selecting one of members by index.
func Enum(members ...string) ValueType {
	return ValueType{Kind: EnumValue, Min: 0, Max: len(members) - 1, Members: members}
}

// Contains reports whether v is a legal stored value.
func (t ValueType) Contains(v int) bool {
	return v >= t.Min && v <= t.Max
}

func (t ValueType) String() string {
	switch t.Kind {
	case BoolValue:
		return "bool"
	case EnumValue:
		return fmt.Sprintf("enum%v", t.Members)
	default:
		return fmt.Sprintf("range[%d,%d]", t.Min, t.Max)
	}
}

// Controller describes one tunable parameter of a module kind.
type Controller struct {
	Name  string
	Index int // 0-based position in the kind's controller list
	Type  ValueType
}
