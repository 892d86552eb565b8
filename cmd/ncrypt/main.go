/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Command ncrypt is a terminal front-end for the ncrypt container format:
// it reads a whole file into memory, calls into the ncrypt package, and
// writes the result back out. It is the file-I/O collaborator the core
// package deliberately has none of.
package main

import (
	"fmt"
	"os"

	"github.com/nmoreaux/ncrypt/cmd/ncrypt/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
