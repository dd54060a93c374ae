package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_ADDR", "DB_PATH", "SECRET_KEY", "BASE_URL",
		"PHONE_REGION", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.PhoneRegion != "IN" {
		t.Errorf("phone region = %q", cfg.PhoneRegion)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
	if cfg.CookieSecure() {
		t.Error("cookies should not require Secure in local env")
	}
	if cfg.SMTPConfigured() {
		t.Error("SMTP should not be considered configured without host and from")
	}
}

func TestLoadProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")

	_, err := Load()
	if err == nil {
		t.Fatal("production load without secrets should fail")
	}
	for _, key := range []string{"SECRET_KEY", "SMTP_HOST", "SMTP_FROM"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should name %s", err.Error(), key)
		}
	}
}

func TestLoadProductionWithSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "a-real-secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "Zenith <noreply@example.com>")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.CookieSecure() {
		t.Error("production cookies should be Secure")
	}
	if !cfg.SMTPConfigured() {
		t.Error("SMTP should be configured")
	}
}
