/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// stripModuleExt removes one trailing module extension from name so the
// shared probe re-runs the full extension priority against the logical name.
func stripModuleExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, moduleExt := range moduleExts {
		if ext == moduleExt {
			return strings.TrimSuffix(name, filepath.Ext(name))
		}
	}
	return name
}

// probeShared probes the single shared fallback directory: the configured
// one, or the directory containing the host runtime's own executable. When
// neither can be determined the probe degrades to no match; it never fails.
func (r *Resolver) probeShared(name string) string {
	dir := r.opts.SharedDir
	if dir == "" {
		dir = hostModuleDir()
	}
	if dir == "" {
		return ""
	}
	return r.probeDir(dir, name)
}

// hostModuleDir returns the directory containing the running executable, or
// "" when it cannot be determined.
func hostModuleDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
