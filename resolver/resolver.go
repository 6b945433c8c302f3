/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver turns module references into existing filesystem paths.
package resolver

import (
	"path/filepath"

	nativfs "bennypowers.dev/nativ/fs"
	"bennypowers.dev/nativ/reference"
)

// Strategy resolves a reference against ordered search directories.
//
// Absence is an empty result, never an error: every anticipated failure
// during resolution degrades to "no match". An embedding host may register
// a replacement Strategy to swap out the whole resolution algorithm.
type Strategy interface {
	// Resolve returns zero or more existing file paths for name.
	Resolve(name string, searchDirs []string) []string
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(name string, searchDirs []string) []string

// Resolve implements the Strategy interface.
func (f StrategyFunc) Resolve(name string, searchDirs []string) []string {
	return f(name, searchDirs)
}

// Options configures a Resolver.
type Options struct {
	// Exclude is a file name (not a path) that is never returned as a
	// resolution result, regardless of which directory it is found in.
	Exclude string

	// SharedDir overrides the shared fallback directory. Empty means the
	// directory containing the running executable.
	SharedDir string
}

// Resolver resolves symbolic names and literal paths to existing files
// through an injected filesystem. Options are written at construction and
// only read afterwards, so concurrent Resolve calls are safe.
type Resolver struct {
	fs   nativfs.FileSystem
	opts Options
}

// New creates a Resolver that probes through the given filesystem.
func New(filesystem nativfs.FileSystem, opts Options) *Resolver {
	return &Resolver{
		fs:   filesystem,
		opts: opts,
	}
}

// Resolve resolves name against searchDirs in caller-supplied order and
// returns a fresh slice of existing file paths.
//
// A name containing reserved characters is treated as a literal path: it
// resolves to itself iff it is absolute and the file exists, and no
// directory search runs. A symbolic name probes each search directory in
// order; the first directory producing a match wins and later directories
// are never consulted, even when they hold a closer extension match. When
// no directory matches, the shared location is probed as a last resort with
// any trailing module extension stripped from the name.
func (r *Resolver) Resolve(name string, searchDirs []string) []string {
	if name == "" {
		return nil
	}

	if reference.Parse(name).IsPath() {
		if filepath.IsAbs(name) && r.fileExists(name) {
			return []string{name}
		}
		return nil
	}

	for _, dir := range searchDirs {
		if match := r.probeDir(dir, name); match != "" {
			return []string{match}
		}
	}

	if match := r.probeShared(stripModuleExt(name)); match != "" {
		return []string{match}
	}

	return nil
}
