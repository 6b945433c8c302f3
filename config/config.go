/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the nativ resolver.
package config

import "bennypowers.dev/nativ/resolver"

// Config represents the resolver configuration.
type Config struct {
	// SearchDirs are the ordered search directories. Entries may contain
	// glob patterns, expanded relative to the config root.
	SearchDirs []string `yaml:"searchDirs" json:"searchDirs"`

	// Exclude is a file name that is never returned as a resolution
	// result, regardless of which directory it is found in.
	Exclude string `yaml:"exclude" json:"exclude"`

	// SharedDir overrides the shared fallback directory (default: the
	// directory containing the running executable).
	SharedDir string `yaml:"sharedDir" json:"sharedDir"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		SearchDirs: nil,
		Exclude:    "",
		SharedDir:  "",
	}
}

// ResolverOptions returns resolver.Options with this configuration applied.
func (c *Config) ResolverOptions() resolver.Options {
	return resolver.Options{
		Exclude:   c.Exclude,
		SharedDir: c.SharedDir,
	}
}
