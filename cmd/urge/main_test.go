package main

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/kmcrane/urge/internal/constants"
)

func TestConfigFlagDefaultsToAppPath(t *testing.T) {
	parser, err := kong.New(&CLI,
		kong.Name(constants.AppName),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	if _, err := parser.Parse([]string{"list"}); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if CLI.Config != constants.DefaultConfigPath {
		t.Errorf("default config = %q, want %q", CLI.Config, constants.DefaultConfigPath)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := filepath.Abs(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	got := expandHome("~/.config/urge/urge.db")
	want := filepath.Join(home, ".config/urge/urge.db")
	if got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}

	if got := expandHome("/tmp/urge.db"); got != "/tmp/urge.db" {
		t.Errorf("absolute path rewritten to %q", got)
	}
}
