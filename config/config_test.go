package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" || cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Currency != "usd" || cfg.NoteLimit != 100 {
		t.Errorf("unexpected checkout defaults: %+v", cfg)
	}
	if cfg.StoreBackend != "file" {
		t.Errorf("expected file backend default, got %s", cfg.StoreBackend)
	}
}

func TestLoadRejectsBadCurrency(t *testing.T) {
	t.Setenv("TIP_CURRENCY", "wat")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid currency code")
	}
}

func TestLoadRejectsPostgresWithoutDSN(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoadTrimsBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "https://tips.example.com/")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://tips.example.com" {
		t.Errorf("trailing slash not trimmed: %s", cfg.BaseURL)
	}
}
