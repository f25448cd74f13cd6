package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentialsDefaults(t *testing.T) {
	creds, err := LoadCredentials("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Users["alice"] != "wonderland" {
		t.Fatalf("default users missing: %+v", creds.Users)
	}
	if creds.Admins["admin"] != "4dm1N" {
		t.Fatalf("default admins missing: %+v", creds.Admins)
	}
	if creds.Users["admin"] != "4dm1N" {
		t.Fatalf("admin identity must be part of the user set")
	}
}

func TestLoadCredentialsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.yaml")
	doc := "users:\n  carol: s3cret\nadmins:\n  root: t0psecret\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Users["carol"] != "s3cret" {
		t.Fatalf("file users not loaded: %+v", creds.Users)
	}
	if creds.Users["root"] != "t0psecret" {
		t.Fatalf("admins must be folded into the user set: %+v", creds.Users)
	}
	if _, ok := creds.Users["alice"]; ok {
		t.Fatalf("defaults must not leak when a file is given")
	}
}

func TestLoadCredentialsBadPath(t *testing.T) {
	if _, err := LoadCredentials(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("want error for missing credentials file")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DB_DRIVER", "")
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("want default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "memory" {
		t.Fatalf("want default driver memory, got %q", cfg.DBDriver)
	}
}
