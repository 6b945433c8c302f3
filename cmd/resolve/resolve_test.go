/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/config"
)

func TestResolverOptions_Precedence(t *testing.T) {
	cfg := &config.Config{Exclude: "FromConfig.dll", SharedDir: "/from/config"}

	t.Run("flag wins", func(t *testing.T) {
		opts := resolverOptions("FromFlag.dll", "/from/flag", cfg)
		if opts.Exclude != "FromFlag.dll" {
			t.Errorf("Exclude = %q, want %q", opts.Exclude, "FromFlag.dll")
		}
		if opts.SharedDir != "/from/flag" {
			t.Errorf("SharedDir = %q, want %q", opts.SharedDir, "/from/flag")
		}
	})

	t.Run("config file fallback", func(t *testing.T) {
		opts := resolverOptions("", "", cfg)
		if opts.Exclude != "FromConfig.dll" {
			t.Errorf("Exclude = %q, want %q", opts.Exclude, "FromConfig.dll")
		}
		if opts.SharedDir != "/from/config" {
			t.Errorf("SharedDir = %q, want %q", opts.SharedDir, "/from/config")
		}
	})

	t.Run("environment beats config file", func(t *testing.T) {
		viper.SetEnvPrefix("NATIV")
		viper.AutomaticEnv()
		t.Setenv("NATIV_EXCLUDE", "FromEnv.dll")

		opts := resolverOptions("", "", cfg)
		if opts.Exclude != "FromEnv.dll" {
			t.Errorf("Exclude = %q, want %q", opts.Exclude, "FromEnv.dll")
		}
	})
}

func TestPrintPaths_Text(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := printPaths(cmd, "text", "Foo", []string{"/mods/Foo.dll"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "/mods/Foo.dll\n" {
		t.Errorf("output = %q, want %q", got, "/mods/Foo.dll\n")
	}
}

func TestPrintPaths_JSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := printPaths(cmd, "json", "Foo", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"paths": []`) {
		t.Errorf("expected empty paths array, got %s", out)
	}
	if !strings.Contains(out, `"name": "Foo"`) {
		t.Errorf("expected name in output, got %s", out)
	}
}

func TestPrintPaths_UnknownFormat(t *testing.T) {
	cmd := &cobra.Command{}

	if err := printPaths(cmd, "xml", "Foo", nil); err == nil {
		t.Error("expected error for unknown format")
	}
}
