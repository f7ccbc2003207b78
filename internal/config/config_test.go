package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BANK_SOURCE", "SESSION_IDLE_TIMEOUT", "EXAM_TIME_LIMIT_MINUTES", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.BankSource != BankSourceDir || cfg.UsesDatabase() {
		t.Errorf("BankSource = %q", cfg.BankSource)
	}
	if cfg.SessionIdleTimeout != 2*time.Hour {
		t.Errorf("SessionIdleTimeout = %v", cfg.SessionIdleTimeout)
	}
	if cfg.ExamTimeLimitMins != 30 {
		t.Errorf("ExamTimeLimitMins = %d", cfg.ExamTimeLimitMins)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BANK_SOURCE", "DB")
	t.Setenv("SESSION_IDLE_TIMEOUT", "45m")
	t.Setenv("EXAM_TIME_LIMIT_MINUTES", "nope")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("EMAILJS_SERVICE_ID", "svc")
	t.Setenv("EMAILJS_TEMPLATE_ID", "tpl")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pub")

	cfg := Load()
	if !cfg.UsesDatabase() {
		t.Errorf("BankSource = %q", cfg.BankSource)
	}
	if cfg.SessionIdleTimeout != 45*time.Minute {
		t.Errorf("SessionIdleTimeout = %v", cfg.SessionIdleTimeout)
	}
	if cfg.ExamTimeLimitMins != 30 {
		t.Errorf("invalid minutes should fall back, got %d", cfg.ExamTimeLimitMins)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.ContactEnabled() {
		t.Error("contact should be enabled")
	}
}
