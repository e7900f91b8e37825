package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("GENIE_URL")
	os.Unsetenv("GENIE_TOKEN")
	os.Unsetenv("GENIE_VERSION")
	os.Unsetenv("GENIE_TIMEOUT_SECONDS")
	os.Unsetenv("GENIE_PROGRESS_STREAM")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceURL != "http://localhost:8080" {
		t.Errorf("unexpected default URL: %s", cfg.ServiceURL)
	}
	if cfg.Version != "3" {
		t.Errorf("unexpected default version: %s", cfg.Version)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.RequestTimeout)
	}
	if cfg.ProgressStream != "stdout" {
		t.Errorf("unexpected default progress stream: %s", cfg.ProgressStream)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GENIE_URL", "http://genie.example.com")
	t.Setenv("GENIE_TOKEN", "secret")
	t.Setenv("GENIE_TIMEOUT_SECONDS", "5")
	t.Setenv("GENIE_PROGRESS_STREAM", "stderr")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceURL != "http://genie.example.com" {
		t.Errorf("unexpected URL: %s", cfg.ServiceURL)
	}
	if cfg.Token != "secret" {
		t.Errorf("unexpected token: %s", cfg.Token)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.RequestTimeout)
	}
	if w := cfg.ProgressWriter(); w != os.Stderr {
		t.Errorf("expected stderr progress writer, got %v", w)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("GENIE_TIMEOUT_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Errorf("expected an error for an invalid timeout")
	}

	t.Setenv("GENIE_TIMEOUT_SECONDS", "5")
	t.Setenv("GENIE_PROGRESS_STREAM", "teletype")
	if _, err := Load(); err == nil {
		t.Errorf("expected an error for an invalid progress stream")
	}
}

func TestProgressWriterOff(t *testing.T) {
	t.Setenv("GENIE_PROGRESS_STREAM", "off")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProgressWriter() != nil {
		t.Errorf("expected nil writer when progress is off")
	}
}
