// Package config загружает конфигурацию сервиса из TOML файла.
// Секреты (пароли БД и Redis) переопределяются переменными окружения,
// локально их удобно держать в .env файле.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	ReserveAPI ReserveAPIConfig `toml:"reserve_api"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Sessions   SessionsConfig   `toml:"sessions"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ReserveAPIConfig настройки клиента reservation API
type ReserveAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DatabaseConfig настройки PostgreSQL. Журнал отправок опционален:
// при enabled = false сервис работает без БД.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis для черновиков бронирования
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionsConfig настройки сессий выбора и черновиков
type SessionsConfig struct {
	SessionTTLMinutes   int `toml:"session_ttl_minutes"`
	SweepIntervalSec    int `toml:"sweep_interval_seconds"`
	DraftTTLMinutes     int `toml:"draft_ttl_minutes"`
	CancelNoticeMinutes int `toml:"cancel_notice_minutes"`
}

// RateLimitConfig настройки per-IP rate limiting
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла и накладывает переменные окружения
func Load(path string) (*Config, error) {
	// .env необязателен: в проде секреты приходят из окружения напрямую
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("RESERVE_API_URL"); v != "" {
		cfg.ReserveAPI.URL = v
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для не заданных
// в конфиге TTL и окна отмены.
func (c *Config) applyDefaults() {
	if c.Sessions.SessionTTLMinutes <= 0 {
		c.Sessions.SessionTTLMinutes = domain.DefaultSessionTTLMinutes
	}
	if c.Sessions.DraftTTLMinutes <= 0 {
		c.Sessions.DraftTTLMinutes = domain.DefaultDraftTTLMinutes
	}
	if c.Sessions.CancelNoticeMinutes <= 0 {
		c.Sessions.CancelNoticeMinutes = domain.DefaultCancellationNoticeMinutes
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.ReserveAPI.URL == "" {
		return fmt.Errorf("reserve_api.url is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	return nil
}
