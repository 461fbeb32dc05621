package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REPORTS_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENV", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ReportsDir != "patient_reports" {
		t.Errorf("expected default reports dir patient_reports, got %s", cfg.ReportsDir)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %s", cfg.LogLevel)
	}
	if cfg.AdviceFile != "" {
		t.Errorf("expected no advice file, got %s", cfg.AdviceFile)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REPORTS_DIR", "/var/lib/reports")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADVICE_FILE", "advice.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ReportsDir != "/var/lib/reports" {
		t.Errorf("expected REPORTS_DIR from env, got %s", cfg.ReportsDir)
	}
	if cfg.IsDev() {
		t.Error("expected IsDev() to be false for production")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LOG_LEVEL debug, got %s", cfg.LogLevel)
	}
	if cfg.AdviceFile != "advice.yaml" {
		t.Errorf("expected ADVICE_FILE advice.yaml, got %s", cfg.AdviceFile)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{ReportsDir: "patient_reports", LogLevel: "info"}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.ReportsDir = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty REPORTS_DIR")
	}

	c.ReportsDir = "patient_reports"
	c.LogLevel = "loud"
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown LOG_LEVEL")
	}
}
