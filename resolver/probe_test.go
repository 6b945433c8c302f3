/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"reflect"
	"testing"
)

func TestCandidateNames(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want []string
	}{
		{
			"extensionless prefers module extensions",
			"Foo",
			[]string{"Foo.dll", "Foo.exe", "Foo"},
		},
		{
			"extension is tried verbatim first",
			"Foo.txt",
			[]string{"Foo.txt", "Foo.txt.dll", "Foo.txt.exe"},
		},
		{
			"module extension is tried verbatim first",
			"Foo.dll",
			[]string{"Foo.dll", "Foo.dll.dll", "Foo.dll.exe"},
		},
		{
			"subdirectory components are preserved",
			"sub/Foo",
			[]string{"sub/Foo.dll", "sub/Foo.exe", "sub/Foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidateNames(tt.ref)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CandidateNames(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestStripModuleExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Foo.dll", "Foo"},
		{"Foo.exe", "Foo"},
		{"Foo.DLL", "Foo"},
		{"Foo.txt", "Foo.txt"},
		{"Foo", "Foo"},
		{"My.Name.Space.dll", "My.Name.Space"},
	}

	for _, tt := range tests {
		if got := stripModuleExt(tt.name); got != tt.want {
			t.Errorf("stripModuleExt(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
