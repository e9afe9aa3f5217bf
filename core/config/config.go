package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot transport settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// SheetsConfig holds the Google Sheets destination for completed forms.
type SheetsConfig struct {
	SpreadsheetID      string `yaml:"spreadsheet_id" envconfig:"GOOGLE_SHEETS_KEY"`
	ServiceAccountJSON string `yaml:"service_account_json" envconfig:"GOOGLE_SERVICE_ACCOUNT"`
	Range              string `yaml:"range" envconfig:"GOOGLE_SHEETS_RANGE"`
}

// DatabaseConfig holds the optional Postgres archive settings.
// An empty Host disables the archive entirely.
type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// Enabled reports whether the Postgres archive is configured.
func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.Host) != ""
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
	// UpdateInlineQuery identifies inline query updates for rate limit exclusions.
	UpdateInlineQuery = "inline_query"
)

// DefaultSheetsRange is the append target when no range is configured.
// The submissions spreadsheet keeps everything on its first sheet.
const DefaultSheetsRange = "Лист1!A:L"

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "message": standard text messages
// - "inline_query": inline query updates
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the whole bot configuration.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Sheets    SheetsConfig    `yaml:"sheets"`
	Database  DatabaseConfig  `yaml:"database"`
}

// CoreConfig returns the configuration itself, satisfying cmd.ConfigCarrier.
func (c *Config) CoreConfig() *Config {
	return c
}

// Load reads configuration from a YAML file and environment variables.
// A missing file is not an error: env-only deployments are supported.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if err := normalizeSheets(&cfg.Sheets); err != nil {
		return err
	}
	if err := normalizeDatabase(&cfg.Database); err != nil {
		return err
	}

	allowed := map[string]struct{}{
		UpdateMessage:     {},
		UpdateInlineQuery: {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: message, inline_query", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}
	return nil
}

func normalizeSheets(cfg *SheetsConfig) error {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return fmt.Errorf("sheets.spreadsheet_id (GOOGLE_SHEETS_KEY) is required")
	}
	if strings.TrimSpace(cfg.ServiceAccountJSON) == "" {
		return fmt.Errorf("sheets.service_account_json (GOOGLE_SERVICE_ACCOUNT) is required")
	}
	if !json.Valid([]byte(cfg.ServiceAccountJSON)) {
		return fmt.Errorf("sheets.service_account_json is not valid JSON")
	}
	if strings.TrimSpace(cfg.Range) == "" {
		cfg.Range = DefaultSheetsRange
	}
	return nil
}

func normalizeDatabase(cfg *DatabaseConfig) error {
	if !cfg.Enabled() {
		return nil
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("database.name is required when database.host is set")
	}
	if strings.TrimSpace(cfg.User) == "" {
		return fmt.Errorf("database.user is required when database.host is set")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "5432"
	}
	if strings.TrimSpace(cfg.SSLMode) == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 5
	}
	return nil
}
