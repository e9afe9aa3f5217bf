package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Sheets: SheetsConfig{
			SpreadsheetID:      "sheet-key",
			ServiceAccountJSON: `{"type":"service_account"}`,
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, expected longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Sheets.Range != DefaultSheetsRange {
		t.Fatalf("range = %q, expected default", cfg.Sheets.Range)
	}
	if cfg.Database.Enabled() {
		t.Fatal("archive should be disabled without a host")
	}
}

func TestNormalizeMissingToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestNormalizeMissingSpreadsheet(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.SpreadsheetID = ""
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "spreadsheet_id") {
		t.Fatalf("expected spreadsheet error, got %v", err)
	}
}

func TestNormalizeMalformedServiceAccount(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.ServiceAccountJSON = "{not json"
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "valid JSON") {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestNormalizeDatabaseDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "localhost", User: "bot", Name: "intake"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" {
		t.Fatalf("unexpected db defaults: %+v", cfg.Database)
	}
	if cfg.Database.MaxConnections != 5 {
		t.Fatalf("max connections = %d, expected 5", cfg.Database.MaxConnections)
	}
}

func TestNormalizeDatabaseRequiresName(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "localhost", User: "bot"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing database name")
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRejectsBadExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"callback"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown exclude_updates value")
	}
}
