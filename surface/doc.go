// SPDX-License-Identifier: MIT

// Package surface builds a fixed 8x8 control surface over a finished patch.
// Each binding is a MultiCtl module driving one controller of one module,
// with a value mapping derived from the controller's type.
package surface
