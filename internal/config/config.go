package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileEnv names the environment variable pointing at an optional TOML file.
const FileEnv = "VARTHEME_CONFIG"

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Session  SessionConfig
	Visitor  VisitorConfig
	Stats    StatsConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings. When URL is
// empty and UseMock is false, theme preferences live in the session only.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	UseMock         bool
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// SessionConfig configures the session cookie holding theme choices.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// VisitorConfig configures the long-lived cookie keying stored
// preferences.
type VisitorConfig struct {
	CookieName string
	Lifetime   time.Duration
}

// StatsConfig points the stats section at its upstream APIs.
type StatsConfig struct {
	Enabled       bool
	GitHubRepo    string
	NPMPackage    string
	GitHubBaseURL string
	NPMBaseURL    string
	Timeout       time.Duration
}

type fileConfig struct {
	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
	Database struct {
		URL             string `toml:"url"`
		MaxIdleConns    int    `toml:"max_idle_conns"`
		MaxOpenConns    int    `toml:"max_open_conns"`
		ConnMaxLifetime string `toml:"conn_max_lifetime"`
		ConnMaxIdleTime string `toml:"conn_max_idle_time"`
		UseMock         *bool  `toml:"use_mock"`
	} `toml:"database"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"logging"`
	Session struct {
		Lifetime     string `toml:"lifetime"`
		CookieName   string `toml:"cookie_name"`
		CookieDomain string `toml:"cookie_domain"`
		CookieSecure *bool  `toml:"cookie_secure"`
	} `toml:"session"`
	Visitor struct {
		CookieName string `toml:"cookie_name"`
		Lifetime   string `toml:"lifetime"`
	} `toml:"visitor"`
	Stats struct {
		Enabled       *bool  `toml:"enabled"`
		GitHubRepo    string `toml:"github_repo"`
		NPMPackage    string `toml:"npm_package"`
		GitHubBaseURL string `toml:"github_base_url"`
		NPMBaseURL    string `toml:"npm_base_url"`
		Timeout       string `toml:"timeout"`
	} `toml:"stats"`
}

// Load inspects the environment, and the file named by VARTHEME_CONFIG
// when set, and builds a Config value. Environment variables win.
func Load() (Config, error) {
	return LoadFrom(os.Getenv(FileEnv))
}

// LoadFrom builds a Config from the TOML file at path overlaid with the
// environment. An empty path or a missing file means defaults only.
func LoadFrom(path string) (Config, error) {
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			file.Server.Addr,
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			file.Database.URL,
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), intOr(file.Database.MaxIdleConns, 5)),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), intOr(file.Database.MaxOpenConns, 20)),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), parseDurationWithDefault(file.Database.ConnMaxLifetime, time.Hour)),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), parseDurationWithDefault(file.Database.ConnMaxIdleTime, 15*time.Minute)),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), boolOr(file.Database.UseMock, false)),
	}

	cfg.Logging = LoggingConfig{
		Level:  strings.ToLower(firstNonEmpty(os.Getenv("LOG_LEVEL"), file.Logging.Level, "info")),
		Format: strings.ToLower(firstNonEmpty(os.Getenv("LOG_FORMAT"), file.Logging.Format, "text")),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), parseDurationWithDefault(file.Session.Lifetime, 12*time.Hour)),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), file.Session.CookieName, "vartheme_session"),
		CookieDomain: firstNonEmpty(os.Getenv("SESSION_COOKIE_DOMAIN"), file.Session.CookieDomain),
		CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), boolOr(file.Session.CookieSecure, false)),
	}

	cfg.Visitor = VisitorConfig{
		CookieName: firstNonEmpty(os.Getenv("VISITOR_COOKIE_NAME"), file.Visitor.CookieName, "vartheme_visitor"),
		Lifetime:   parseDurationWithDefault(os.Getenv("VISITOR_LIFETIME"), parseDurationWithDefault(file.Visitor.Lifetime, 365*24*time.Hour)),
	}

	cfg.Stats = StatsConfig{
		Enabled:       parseBoolWithDefault(os.Getenv("STATS_ENABLED"), boolOr(file.Stats.Enabled, true)),
		GitHubRepo:    firstNonEmpty(os.Getenv("STATS_GITHUB_REPO"), file.Stats.GitHubRepo, "sumitt-wayne/vartheme"),
		NPMPackage:    firstNonEmpty(os.Getenv("STATS_NPM_PACKAGE"), file.Stats.NPMPackage, "vartheme"),
		GitHubBaseURL: firstNonEmpty(os.Getenv("STATS_GITHUB_BASE_URL"), file.Stats.GitHubBaseURL),
		NPMBaseURL:    firstNonEmpty(os.Getenv("STATS_NPM_BASE_URL"), file.Stats.NPMBaseURL),
		Timeout:       parseDurationWithDefault(os.Getenv("STATS_TIMEOUT"), parseDurationWithDefault(file.Stats.Timeout, 5*time.Second)),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Session.CookieName == cfg.Visitor.CookieName {
		return Config{}, fmt.Errorf("session and visitor cookies must use different names")
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}

func intOr(value, def int) int {
	if value == 0 {
		return def
	}
	return value
}

func boolOr(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}
