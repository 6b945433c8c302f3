/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "path/filepath"

// moduleExts are the well-known binary module extensions, in probe priority
// order for extensionless requests.
var moduleExts = []string{".dll", ".exe"}

// CandidateNames returns the file names a directory probe tries for name,
// in order.
//
// An extensionless request most plausibly names a compiled module by its
// logical name, so module extensions are tried before the bare name. A name
// that already carries some extension is tried verbatim first to respect
// explicit caller intent, with module extensions as safety fallbacks.
func CandidateNames(name string) []string {
	candidates := make([]string, 0, len(moduleExts)+1)
	if filepath.Ext(name) == "" {
		for _, ext := range moduleExts {
			candidates = append(candidates, name+ext)
		}
		return append(candidates, name)
	}
	candidates = append(candidates, name)
	for _, ext := range moduleExts {
		candidates = append(candidates, name+ext)
	}
	return candidates
}

// probeDir returns the first existing file in dir matching name, or "" when
// nothing matches. Candidates whose file name equals the exclusion filter
// are skipped even when the file exists.
func (r *Resolver) probeDir(dir, name string) string {
	if dir == "" {
		return ""
	}

	full := filepath.Join(dir, name)

	// The name may embed subdirectory components pointing nowhere; a
	// missing parent directory is no-match, not an error.
	if !r.dirExists(filepath.Dir(full)) {
		return ""
	}

	for _, candidate := range CandidateNames(name) {
		path := filepath.Join(dir, candidate)
		if r.excluded(path) {
			continue
		}
		if r.fileExists(path) {
			return path
		}
	}

	// Last resort: a name that carried directory separators may point at
	// an exact file the extension candidates missed.
	if filepath.Base(full) != full && !r.excluded(full) && r.fileExists(full) {
		return full
	}

	return ""
}

// excluded reports whether the file name of path equals the exclusion
// filter.
func (r *Resolver) excluded(path string) bool {
	return r.opts.Exclude != "" && filepath.Base(path) == r.opts.Exclude
}

// fileExists reports whether path exists and is a regular file. Stat
// failures of any kind are treated as absence.
func (r *Resolver) fileExists(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists reports whether path exists and is a directory.
func (r *Resolver) dirExists(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
