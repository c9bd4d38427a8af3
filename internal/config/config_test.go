package config

import (
	"testing"
	"time"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without TELEGRAM_BOT_TOKEN")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_ADMIN_IDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.DataDir != "data" {
		t.Fatalf("data dir = %q, want data", cfg.Storage.DataDir)
	}
	if cfg.Escalation.Interval() != time.Hour {
		t.Fatalf("escalation interval = %v, want 1h", cfg.Escalation.Interval())
	}
	if cfg.Escalation.MaxAge() != 24*time.Hour {
		t.Fatalf("escalation max age = %v, want 24h", cfg.Escalation.MaxAge())
	}
	if cfg.Support.DefaultLanguage != "en" {
		t.Fatalf("default language = %q, want en", cfg.Support.DefaultLanguage)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr = %q", cfg.App.Addr())
	}
}

func TestLoadParsesAdminIDs(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_ADMIN_IDS", "7, 8 ,9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []int64{7, 8, 9}
	if len(cfg.Telegram.AdminUserIDs) != len(want) {
		t.Fatalf("admin ids = %v", cfg.Telegram.AdminUserIDs)
	}
	for i, id := range want {
		if cfg.Telegram.AdminUserIDs[i] != id {
			t.Fatalf("admin ids = %v, want %v", cfg.Telegram.AdminUserIDs, want)
		}
	}
}

func TestLoadRejectsBadAdminIDs(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_ADMIN_IDS", "7,abc")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric admin id")
	}
}

func TestEscalationConfigOverrides(t *testing.T) {
	cfg := EscalationConfig{IntervalMinutes: 15, MaxAgeHours: 48}
	if cfg.Interval() != 15*time.Minute {
		t.Fatalf("interval = %v", cfg.Interval())
	}
	if cfg.MaxAge() != 48*time.Hour {
		t.Fatalf("max age = %v", cfg.MaxAge())
	}
}
