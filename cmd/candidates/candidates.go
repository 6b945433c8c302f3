/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package candidates provides the candidates command for nativ.
package candidates

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/nativ/reference"
	"bennypowers.dev/nativ/resolver"
)

// Cmd is the candidates cobra command that prints the probe order for a
// reference, for debugging resolution.
var Cmd = &cobra.Command{
	Use:   "candidates <name>",
	Short: "Show the probe order for a module reference",
	Long: `Show the file names a directory probe tries for a symbolic module
reference, in priority order.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	name := args[0]

	if reference.Parse(name).IsPath() {
		return fmt.Errorf("%q is a literal path and has no probe order", name)
	}

	for _, candidate := range resolver.CandidateNames(name) {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
	return nil
}
