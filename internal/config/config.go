package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"log"`

	Storage struct {
		Backend string `mapstructure:"backend"`
		// DSN is the Postgres connection string or the SQLite file path.
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"storage"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Suggestions struct {
		DefaultLimit  int     `mapstructure:"default_limit"`
		MinConfidence float64 `mapstructure:"min_confidence"`
	} `mapstructure:"suggestions"`

	History struct {
		MaxEntries int  `mapstructure:"max_entries"` // 0 keeps everything
		Async      bool `mapstructure:"async"`       // record through the asynq worker
	} `mapstructure:"history"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

// ListenAddr is the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("suggestions.default_limit", 5)
	v.SetDefault("suggestions.min_confidence", 0.7)
	v.SetDefault("history.max_entries", 0)
	v.SetDefault("history.async", false)
	v.SetDefault("server.addr", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.queues", map[string]int{"history": 1})
}

// LoadConfig reads config.yaml from the working directory, if present, and
// IDEAFORGE_* environment variables (storage.dsn -> IDEAFORGE_STORAGE_DSN).
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load reads the file at path, or searches for config.yaml in "." when path is
// empty. A missing file is not an error; defaults and env still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("IDEAFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
