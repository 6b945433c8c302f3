/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for nativ.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/config"
	nativfs "bennypowers.dev/nativ/fs"
	"bennypowers.dev/nativ/internal/logger"
	"bennypowers.dev/nativ/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <name> [dirs...]",
	Short: "Resolve a module reference against search directories",
	Long: `Resolve a symbolic module reference against ordered search directories.

Search directories come from the command line. When none are given they fall
back to the searchDirs of .config/nativ.{yaml,yml,json} in the current
directory.

Examples:
  # Probe two directories for Utils.dll, Utils.exe, then Utils
  nativ resolve Utils ./mods ./lib

  # References carrying reserved characters are literal paths and skip
  # the directory search entirely
  nativ resolve 'C:\mods\Utils.dll'

  # Never resolve back to the module currently being compiled
  nativ resolve --exclude Utils.dll Utils ./mods

  # Machine-readable output
  nativ resolve --format json Utils ./mods`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("exclude", "x", "", "File name never returned as a result")
	Cmd.Flags().String("shared-dir", "", "Override the shared fallback directory")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	name := args[0]
	dirs := args[1:]

	flagExclude, _ := cmd.Flags().GetString("exclude")
	flagSharedDir, _ := cmd.Flags().GetString("shared-dir")
	format, _ := cmd.Flags().GetString("format")

	filesystem := nativfs.NewOSFileSystem()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error determining working directory: %w", err)
	}

	cfg := config.LoadOrDefault(filesystem, cwd)
	if len(dirs) == 0 {
		dirs, err = cfg.ExpandSearchDirs(filesystem, cwd)
		if err != nil {
			return fmt.Errorf("error expanding search directories: %w", err)
		}
	}

	opts := resolverOptions(flagExclude, flagSharedDir, cfg)
	paths := resolver.New(filesystem, opts).Resolve(name, dirs)

	return printPaths(cmd, format, name, paths)
}

// resolverOptions merges settings with precedence flag > environment >
// config file.
func resolverOptions(flagExclude, flagSharedDir string, cfg *config.Config) resolver.Options {
	return resolver.Options{
		Exclude:   setting(flagExclude, "exclude", cfg.Exclude),
		SharedDir: setting(flagSharedDir, "shared-dir", cfg.SharedDir),
	}
}

// setting returns the first non-empty of flag value, NATIV_ environment
// override, and config file value.
func setting(flagValue, key, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return configValue
}

func printPaths(cmd *cobra.Command, format, name string, paths []string) error {
	switch format {
	case "json":
		if paths == nil {
			paths = []string{}
		}
		out, err := json.MarshalIndent(map[string]any{
			"name":  name,
			"paths": paths,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		if len(paths) == 0 {
			logger.Warn("no match for %q", name)
			return nil
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
