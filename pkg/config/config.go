package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port               string   `mapstructure:"port"`
	DatabaseURL        string   `mapstructure:"database_url"`
	AppEnv             string   `mapstructure:"app_env"`
	BaseURL            string   `mapstructure:"base_url"`
	APIURL             string   `mapstructure:"api_url"`
	GoogleClientID     string   `mapstructure:"google_client_id"`
	GoogleClientSecret string   `mapstructure:"google_client_secret"`
	GoogleRedirectURL  string   `mapstructure:"google_redirect_url"`
	JWTSecret          string   `mapstructure:"jwt_secret"`
	FrontendURL        string   `mapstructure:"frontend_url"`
	AllowedEmails      []string `mapstructure:"allowed_emails"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// SyncMode selects how the editor dispatches remote writes: "unordered"
	// or "serialized".
	SyncMode string `mapstructure:"sync_mode"`
	// ThemeValidation is "lenient" or "strict".
	ThemeValidation string `mapstructure:"theme_validation"`

	ClickRateLimit float64 `mapstructure:"click_rate_limit"`
	ClickBurst     int     `mapstructure:"click_burst"`
	// TrustProxy takes the client address from X-Forwarded-For. Enable it
	// only behind a proxy that overwrites the header.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

// IsProduction reports whether cookies should be marked secure.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment, after merging a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AllowedEmails = cleanList(cfg.AllowedEmails)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "file:db.sqlite")
	v.SetDefault("app_env", "local")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("google_redirect_url", "http://localhost:8080/auth/google/callback")
	v.SetDefault("jwt_secret", "secret")
	v.SetDefault("frontend_url", "http://localhost:8080/dashboard")
	v.SetDefault("allowed_emails", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("sync_mode", "unordered")
	v.SetDefault("theme_validation", "lenient")
	v.SetDefault("click_rate_limit", 5.0)
	v.SetDefault("click_burst", 10)
	v.SetDefault("trust_proxy", false)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"port":                 "PORT",
		"database_url":         "DATABASE_URL",
		"app_env":              "APP_ENV",
		"base_url":             "BASE_URL",
		"api_url":              "API_URL",
		"google_client_id":     "GOOGLE_CLIENT_ID",
		"google_client_secret": "GOOGLE_CLIENT_SECRET",
		"google_redirect_url":  "GOOGLE_REDIRECT_URL",
		"jwt_secret":           "JWT_SECRET",
		"frontend_url":         "FRONTEND_URL",
		"allowed_emails":       "ALLOWED_EMAILS",
		"log_level":            "LOG_LEVEL",
		"log_format":           "LOG_FORMAT",
		"sync_mode":            "SYNC_MODE",
		"theme_validation":     "THEME_VALIDATION",
		"click_rate_limit":     "CLICK_RATE_LIMIT",
		"click_burst":          "CLICK_BURST",
		"trust_proxy":          "TRUST_PROXY",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("port is required")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database url is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if cfg.IsProduction() && cfg.JWTSecret == "secret" {
		return errors.New("jwt secret must be changed in production")
	}
	switch cfg.SyncMode {
	case "unordered", "serialized":
	default:
		return fmt.Errorf("invalid sync mode %q", cfg.SyncMode)
	}
	switch cfg.ThemeValidation {
	case "lenient", "strict":
	default:
		return fmt.Errorf("invalid theme validation mode %q", cfg.ThemeValidation)
	}
	if cfg.ClickRateLimit <= 0 {
		return errors.New("click rate limit must be positive")
	}
	if cfg.ClickBurst <= 0 {
		return errors.New("click burst must be positive")
	}
	return nil
}

// cleanList splits comma-joined entries and drops blanks.
func cleanList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
