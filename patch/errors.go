// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// errors.go - sentinel errors of the host adapter.

package patch

import "errors"

var (
	// ErrUnknownKind indicates CreateModule was asked for a kind outside the catalog.
	ErrUnknownKind = errors.New("patch: unknown module kind")

	// ErrModuleNotFound indicates a ModuleID that was never created.
	ErrModuleNotFound = errors.New("patch: module not found")

	// ErrUnknownController indicates a controller name the module's kind does not declare.
	ErrUnknownController = errors.New("patch: unknown controller")

	// ErrValueOutOfRange indicates a value outside the controller's ValueType.
	ErrValueOutOfRange = errors.New("patch: controller value out of range")

	// ErrSelfConnection indicates Connect(m, m).
	ErrSelfConnection = errors.New("patch: module connected to itself")
)

// ErrNoSignalPath indicates a module the note input does not reach.
var ErrNoSignalPath = errors.New("patch: no signal path from the note input")
