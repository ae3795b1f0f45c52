package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Question source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var ErrUnknownSource = errors.New("unknown questions source")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`       // current application environment (local, dev, production etc)
	LogLevel         string    `mapstructure:"log_level"` // optional zap level override (debug, info, warn, error)
	TelegramAPIToken string    `mapstructure:"-"`         // Telegram API token loaded from environment
	Questions        Questions `mapstructure:"questions"` // question bank source
	AdminIDs         []int64   `mapstructure:"admin_ids"` // Telegram users allowed to trigger /reload
	DB               DB        `mapstructure:"database"`  // database configuration section
}

// Questions configures where the question bank is read from.
type Questions struct {
	Source         string `mapstructure:"source"`          // "file" or "postgres"
	Path           string `mapstructure:"path"`            // CSV or YAML file for the file source
	Table          string `mapstructure:"table"`           // table name for the postgres source
	ReloadSchedule string `mapstructure:"reload_schedule"` // cron spec, empty disables scheduled reloads
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// BotToken returns the Telegram token if it is configured.
func (c *Config) BotToken() (string, error) {
	if c.TelegramAPIToken == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return c.TelegramAPIToken, nil
}

// IsAdmin reports whether userID may run administrative commands.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Load reads configuration from .env, config files and environment variables.
// Config files are searched in paths, or ./config when none are given.
func Load(paths ...string) (*Config, error) {
	// A missing .env is fine, the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "")
	v.SetDefault("questions.source", SourceFile)
	v.SetDefault("questions.path", "questions.csv")
	v.SetDefault("questions.table", "questions")
	v.SetDefault("questions.reload_schedule", "")
	v.SetDefault("admin_ids", []int64{})
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("admin_ids", "ADMIN_IDS")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.Questions.Source {
	case SourceFile, SourcePostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Questions.Source)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
