package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/lunchbox/internal/config"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/data/lunchbox.db", filepath.Join(home, "data/lunchbox.db")},
		{"/tmp/lunchbox.db", "/tmp/lunchbox.db"},
		{"relative.db", "relative.db"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			if err != nil {
				t.Fatalf("ExpandPath: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewAppWiresDependencies(t *testing.T) {
	cfg := config.NewDefault()
	cfg.API.Token = "test-token"
	cfg.Database.Path = filepath.Join(t.TempDir(), "lunchbox.db")

	a, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer cleanup()

	if a.Service == nil || a.Service.Session == nil || a.Service.Confirmer == nil || a.Service.History == nil {
		t.Fatal("service not wired")
	}
	if a.DBPath != cfg.Database.Path {
		t.Errorf("DBPath = %q", a.DBPath)
	}
	if _, err := os.Stat(a.DBPath); err != nil {
		t.Errorf("database not created: %v", err)
	}
}

func TestNewAppRequiresToken(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "lunchbox.db")

	if _, _, err := NewApp(cfg, os.DirFS("../..")); err == nil {
		t.Fatal("expected error without token")
	}
}
