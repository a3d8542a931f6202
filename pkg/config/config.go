package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
	HTTP     HTTPConfig     `toml:"http"`
	Warbler  WarblerConfig  `toml:"warbler"`
}

type AppConfig struct {
	Name string `toml:"name"`
	Env  string `toml:"env"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type PostgresConfig struct {
	ConnStr string `toml:"conn_str"`
}

type RedisConfig struct {
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

type HTTPConfig struct {
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
}

type WarblerConfig struct {
	FeedLimit            int  `toml:"feed_limit"`
	UserPageMessageLimit int  `toml:"user_page_message_limit"`
	AllowSelfFollow      bool `toml:"allow_self_follow"`
}

// Load reads configuration from defaults, then an optional TOML file
// (CONFIG_FILE, default configs/config.toml), then environment variables.
// A .env file, when present, is loaded first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, assuming environment variables are set")
	}

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Redis.SessionTTLMinutes) * time.Minute
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.HTTP.RequestTimeoutSeconds) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "warbler",
			Env:  "development",
			Host: "0.0.0.0",
			Port: 8080,
		},
		Postgres: PostgresConfig{
			ConnStr: "host=127.0.0.1 user=warbler dbname=warbler port=5432 sslmode=disable",
		},
		Redis: RedisConfig{
			Addr:              "127.0.0.1:6379",
			Password:          "",
			DB:                0,
			SessionTTLMinutes: 60 * 24 * 7,
		},
		HTTP: HTTPConfig{
			RequestTimeoutSeconds: 10,
		},
		Warbler: WarblerConfig{
			FeedLimit:            100,
			UserPageMessageLimit: 100,
			AllowSelfFollow:      false,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)

	cfg.Postgres.ConnStr = getEnv("POSTGRES_CONN_STR", cfg.Postgres.ConnStr)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.SessionTTLMinutes = getEnvAsInt("SESSION_TTL_MINUTES", cfg.Redis.SessionTTLMinutes)

	cfg.HTTP.RequestTimeoutSeconds = getEnvAsInt("REQUEST_TIMEOUT_SECONDS", cfg.HTTP.RequestTimeoutSeconds)

	cfg.Warbler.FeedLimit = getEnvAsInt("FEED_LIMIT", cfg.Warbler.FeedLimit)
	cfg.Warbler.UserPageMessageLimit = getEnvAsInt("USER_PAGE_MESSAGE_LIMIT", cfg.Warbler.UserPageMessageLimit)
	if v, ok := os.LookupEnv("ALLOW_SELF_FOLLOW"); ok {
		cfg.Warbler.AllowSelfFollow = v == "true" || v == "1"
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
