// SPDX-License-Identifier: MIT
// Command kipple generates seeded audio patches.

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
