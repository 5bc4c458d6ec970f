package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/classifier"
	"github.com/xaenox/memo-notes/internal/storage"
)

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Log        LogConfig        `mapstructure:"log"`
}

type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	RedisURL    string `mapstructure:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type ClassifierConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	UseGPT   bool `mapstructure:"use_gpt"`
	MinScore int  `mapstructure:"min_score"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// StorageBackend converts the storage and database sections for storage.Open.
func (c *Config) StorageBackend() storage.Config {
	return storage.Config{
		Driver: c.Storage.Driver,
		Database: storage.DatabaseConfig{
			Host:     c.Database.Host,
			Port:     c.Database.Port,
			User:     c.Database.User,
			Password: c.Database.Password,
			DBName:   c.Database.DBName,
			SSLMode:  c.Database.SSLMode,
		},
		SQLitePath:  c.Storage.SQLitePath,
		RedisURL:    c.Storage.RedisURL,
		RedisPrefix: c.Storage.RedisPrefix,
	}
}

// NewClassifier returns the configured category suggester, or nil when
// auto-categorisation is disabled.
func (c *Config) NewClassifier(logger *zap.Logger) classifier.Classifier {
	if !c.Classifier.Enabled {
		return nil
	}
	if c.Classifier.UseGPT && c.OpenAI.APIKey != "" {
		return classifier.NewGPTClassifier(
			c.OpenAI.APIKey,
			c.OpenAI.BaseURL,
			c.OpenAI.Model,
			c.OpenAI.MaxTokens,
			c.OpenAI.Temperature,
			logger,
		)
	}
	return classifier.NewSimpleClassifier(c.Classifier.MinScore)
}

// NewLogger builds a zap logger honouring the log section.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if c.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		cfg.Level = level
	}
	return cfg.Build()
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return DatabaseConfig{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		port, err = strconv.Atoi(u.Port())
		if err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid port %q: %w", u.Port(), err)
		}
	}

	sslMode := u.Query().Get("sslmode")
	if sslMode == "" {
		sslMode = "disable"
	}

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  sslMode,
	}, nil
}

// LoadConfig reads defaults, then the YAML file at path (skipped when path
// is empty), then the environment. NOTES_STORAGE_DRIVER overrides
// storage.driver and so on; DATABASE_URL, REDIS_URL, TELEGRAM_TOKEN and
// OPENAI_API_KEY are honoured unprefixed.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("storage.driver", storage.DriverSQLite)
	v.SetDefault("storage.sqlite_path", "notes.db")
	v.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis_prefix", "memo-notes:")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "notes")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("telegram.token", "")
	v.SetDefault("classifier.enabled", false)
	v.SetDefault("classifier.use_gpt", false)
	v.SetDefault("classifier.min_score", 1)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 50)
	v.SetDefault("openai.temperature", 0.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	// Enable environment variable support
	v.SetEnvPrefix("NOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("storage.redis_url", "NOTES_STORAGE_REDIS_URL", "REDIS_URL")
	_ = v.BindEnv("telegram.token", "NOTES_TELEGRAM_TOKEN", "TELEGRAM_TOKEN")
	_ = v.BindEnv("openai.api_key", "NOTES_OPENAI_API_KEY", "OPENAI_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("database_url"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		config.Database = dbConfig
	}

	return &config, nil
}
