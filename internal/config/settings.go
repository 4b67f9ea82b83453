package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the runtime configuration of the API, loaded from an optional
// YAML file and overridden by environment variables.
type Settings struct {
	Env          string         `yaml:"env"`
	Port         int            `yaml:"port"`
	LogLevel     string         `yaml:"log_level"`
	Timezone     string         `yaml:"timezone"`
	CORSOrigins  []string       `yaml:"cors_origins"`
	CookieDomain string         `yaml:"cookie_domain"`
	Database     DatabaseConfig `yaml:"database"`
	Redis        RedisConfig    `yaml:"redis"`
	RateLimit    RateLimit      `yaml:"rate_limit"`
	Shutdown     time.Duration  `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// RedisConfig enables the Redis invalidation publisher when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

type RateLimit struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	Burst             int `yaml:"burst"`
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"mysql":    true,
	"sqlite":   true,
}

// Load reads the YAML file at path (when non-empty), applies env overrides
// and returns validated settings.
func Load(path string) (*Settings, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes, then applies defaults and environment overrides.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("config: parse: %w", err)
		}
	}
	s.applyEnv()
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("APP_ENV"); v != "" {
		s.Env = v
	}
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		s.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		s.Timezone = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		s.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("COOKIE_DOMAIN"); v != "" {
		s.CookieDomain = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		s.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		s.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		s.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		s.Redis.Password = v
	}
	if v := os.Getenv("INVALIDATION_CHANNEL"); v != "" {
		s.Redis.Channel = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_RPS")); err == nil {
		s.RateLimit.RequestsPerSecond = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil {
		s.RateLimit.Burst = v
	}
}

func (s *Settings) applyDefaults() {
	if s.Env == "" {
		s.Env = "development"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.Timezone == "" {
		s.Timezone = "America/Sao_Paulo"
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"http://localhost:3000"}
	}
	if s.Database.Driver == "" {
		s.Database.Driver = "postgres"
	}
	if s.Database.MaxOpenConns == 0 {
		s.Database.MaxOpenConns = 10
	}
	if s.Database.MaxIdleConns == 0 {
		s.Database.MaxIdleConns = 5
	}
	if s.Redis.Channel == "" {
		s.Redis.Channel = "chronos:invalidate"
	}
	if s.RateLimit.RequestsPerSecond == 0 {
		s.RateLimit.RequestsPerSecond = 20
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 40
	}
	if s.Shutdown == 0 {
		s.Shutdown = 10 * time.Second
	}
}

func (s *Settings) validate() error {
	var errs []string
	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port %d out of range", s.Port))
	}
	if !supportedDrivers[s.Database.Driver] {
		errs = append(errs, fmt.Sprintf("database.driver %q is not supported", s.Database.Driver))
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("timezone %q is invalid", s.Timezone))
	}
	if s.RateLimit.RequestsPerSecond < 0 || s.RateLimit.Burst < 0 {
		errs = append(errs, "rate_limit values must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Location returns the configured time zone, falling back to UTC.
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
