/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package reference classifies module references as symbolic names or
// literal paths.
package reference

import "strings"

// Kind indicates how a reference string is being used.
type Kind int

const (
	// KindSymbolic is a namespace-like or bare module name.
	KindSymbolic Kind = iota
	// KindPath is a literal filesystem path.
	KindPath
)

// reservedChars are characters that are illegal in a symbolic name but may
// appear in a path. Their presence means the string is being used as a path.
const reservedChars = `:*?<>|"`

// Reference represents a classified module reference.
type Reference struct {
	// Kind is the type of reference (symbolic name or literal path).
	Kind Kind

	// Raw is the original reference string.
	Raw string
}

// ContainsReservedChar reports whether s contains any character that could
// not appear in a symbolic name. The scan is purely character-based and
// performs no filesystem I/O. The empty string contains no reserved
// character and therefore classifies as a symbolic name; callers decide
// whether an empty name is meaningful.
func ContainsReservedChar(s string) bool {
	return strings.ContainsAny(s, reservedChars)
}

// Parse classifies a reference string into a Reference struct.
// Directory separators are not reserved, so a name may embed subdirectory
// components and still classify as symbolic.
func Parse(raw string) *Reference {
	kind := KindSymbolic
	if ContainsReservedChar(raw) {
		kind = KindPath
	}
	return &Reference{
		Kind: kind,
		Raw:  raw,
	}
}

// IsPath returns true if this reference is a literal filesystem path.
func (r *Reference) IsPath() bool {
	return r.Kind == KindPath
}

// IsSymbolic returns true if this reference is a symbolic name.
func (r *Reference) IsSymbolic() bool {
	return r.Kind == KindSymbolic
}
