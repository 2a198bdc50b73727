package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceDriverHTTP     = "http"
	SourceDriverPostgres = "postgres"

	defaultUpstreamURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Source    SourceConfig
	DB        DBConfig
	Redis     RedisConfig
	Directory DirectoryConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type UpstreamConfig struct {
	URL string
	// Timeout bounds the single fetch; zero means no timeout
	Timeout time.Duration
}

type SourceConfig struct {
	Driver        string
	MirrorEnabled bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	CacheEnabled bool
	CacheKey     string
	CacheTTL     time.Duration
}

type DirectoryConfig struct {
	SuggestionLimit int
}

// UsesPostgres reports whether the configuration needs a database connection.
func (c *Config) UsesPostgres() bool {
	return c.Source.Driver == SourceDriverPostgres || c.Source.MirrorEnabled
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads path when it exists; environment variables always override it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Upstream: UpstreamConfig{
			URL:     v.GetString("UPSTREAM_URL"),
			Timeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Source: SourceConfig{
			Driver:        v.GetString("SOURCE_DRIVER"),
			MirrorEnabled: v.GetBool("MIRROR_ENABLED"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:         v.GetString("REDIS_HOST"),
			Port:         v.GetString("REDIS_PORT"),
			Password:     v.GetString("REDIS_PASSWORD"),
			DB:           v.GetInt("REDIS_DB"),
			CacheEnabled: v.GetBool("CACHE_ENABLED"),
			CacheKey:     v.GetString("CACHE_KEY"),
			CacheTTL:     v.GetDuration("CACHE_TTL"),
		},
		Directory: DirectoryConfig{
			SuggestionLimit: v.GetInt("SUGGESTION_LIMIT"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("UPSTREAM_URL", defaultUpstreamURL)
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("SOURCE_DRIVER", SourceDriverHTTP)
	v.SetDefault("MIRROR_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_KEY", "directory:doctors:raw")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("SUGGESTION_LIMIT", 3)
}

var (
	ErrUnknownSourceDriver = errors.New("unknown SOURCE_DRIVER, use http or postgres")
	ErrMissingUpstreamURL  = errors.New("UPSTREAM_URL is required for the http source")
)

func (c *Config) validate() error {
	switch c.Source.Driver {
	case SourceDriverHTTP:
		if c.Upstream.URL == "" {
			return ErrMissingUpstreamURL
		}
	case SourceDriverPostgres:
		// mirroring into the table being read is pointless
		c.Source.MirrorEnabled = false
	default:
		return ErrUnknownSourceDriver
	}

	if c.Directory.SuggestionLimit <= 0 {
		c.Directory.SuggestionLimit = 3
	}
	return nil
}
