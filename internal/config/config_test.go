package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ADMINCTL_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "https://api.sdtaxation.com" {
		t.Fatalf("unexpected api base url: %s", cfg.APIBaseURL)
	}
	if cfg.ExpiryCheckInterval != 30*time.Second {
		t.Fatalf("unexpected expiry check interval: %s", cfg.ExpiryCheckInterval)
	}
	if cfg.ExpiryCountdown != 2*time.Second {
		t.Fatalf("unexpected expiry countdown: %s", cfg.ExpiryCountdown)
	}
	if cfg.StorageDir == "" {
		t.Fatal("storage dir should default to a home subdirectory")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ADMINCTL_API_URL", "https://staging.sdtaxation.com")
	t.Setenv("ADMINCTL_EXPIRY_CHECK_INTERVAL", "10s")
	t.Setenv("ADMINCTL_STORAGE_DIR", filepath.FromSlash("/tmp/adminctl-test"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "https://staging.sdtaxation.com" {
		t.Fatalf("env override ignored: %s", cfg.APIBaseURL)
	}
	if cfg.ExpiryCheckInterval != 10*time.Second {
		t.Fatalf("env override ignored: %s", cfg.ExpiryCheckInterval)
	}
	if cfg.StorageDir != filepath.FromSlash("/tmp/adminctl-test") {
		t.Fatalf("env override ignored: %s", cfg.StorageDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.yaml")
	data := "api_base_url: https://onprem.example.com\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "https://onprem.example.com" {
		t.Fatalf("file value ignored: %s", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("file value ignored: %s", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("default lost when file present: %s", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ADMINCTL_HTTP_TIMEOUT", "0s")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for zero http_timeout")
	}
}
