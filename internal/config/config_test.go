package config

import (
	"os"
	"path/filepath"
	"testing"
)

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		old, had := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, old)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	d := t.TempDir()
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("FAKESHEET_CONFIGS_DIR=/srv/configs\nFAKESHEET_LOG_LEVEL=debug\nFAKESHEET_MAX_ROWS=500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(d); err != nil {
		t.Fatal(err)
	}
	unsetForTest(t, "FAKESHEET_CONFIGS_DIR", "FAKESHEET_LOG_LEVEL", "FAKESHEET_MAX_ROWS")

	cfg := Load()
	if cfg.ConfigsDir != "/srv/configs" {
		t.Fatalf("expected FAKESHEET_CONFIGS_DIR from .env, got %q", cfg.ConfigsDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected FAKESHEET_LOG_LEVEL from .env, got %q", cfg.LogLevel)
	}
	if cfg.MaxRows != 500 {
		t.Fatalf("expected FAKESHEET_MAX_ROWS from .env, got %d", cfg.MaxRows)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	unsetForTest(t, "FAKESHEET_BIND_ADDR", "FAKESHEET_SHEET_NAME", "FAKESHEET_MAX_ROWS")
	t.Setenv("FAKESHEET_MAX_ROWS", "not-a-number")

	cfg := Load()
	if cfg.BindAddr != ":8080" {
		t.Fatalf("unexpected bind addr %q", cfg.BindAddr)
	}
	if cfg.SheetName != "Dados Gerados" {
		t.Fatalf("unexpected sheet name %q", cfg.SheetName)
	}
	if cfg.MaxRows != 100000 {
		t.Fatalf("expected default max rows on bad input, got %d", cfg.MaxRows)
	}
}
