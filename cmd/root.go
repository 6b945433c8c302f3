/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for nativ.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/cmd/candidates"
	"bennypowers.dev/nativ/cmd/resolve"
	"bennypowers.dev/nativ/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "nativ",
	Short: "Resolve module references to file paths",
	Long:  `nativ resolves a symbolic module reference — a namespace name or an assembly file name — against ordered search directories into existing file paths, for a host runtime that loads the results itself.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Settings may be overridden from the environment, e.g. NATIV_EXCLUDE.
	viper.SetEnvPrefix("NATIV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(candidates.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
