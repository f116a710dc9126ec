package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig
	Session  SessionConfig

	// Calendar assistant
	Assistant      AssistantConfig
	JWT            JWTConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig selects the SQL event store. An empty Host keeps events in memory.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig selects where assistant sessions live: "memory" or "redis".
type SessionConfig struct {
	Store string
	Size  int
	TTL   time.Duration
}

type AssistantConfig struct {
	Timezone string
}

type JWTConfig struct {
	SecretKey string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// GoogleCalendarConfig enables the calendar mirror when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// TelegramConfig enables the Telegram webhook when BotToken is set.
type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // timeout for the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper reads a Config out of v and validates it.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")
	cfg.Postgres.AutoMigrate = v.GetBool("postgres.auto_migrate")

	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	cfg.Session.Store = strings.ToLower(v.GetString("session.store"))
	cfg.Session.Size = v.GetInt("session.size")
	cfg.Session.TTL = v.GetDuration("session.ttl")

	// Calendar assistant
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")

	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.size", 10000)
	v.SetDefault("session.ttl", "24h")

	v.SetDefault("assistant.timezone", "UTC")
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("google_calendar.calendar_id", "primary")

	// One attempt, no fallback: a failed call goes straight to keyword classification.
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "30s")
}

func validate(cfg *Config) error {
	switch cfg.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("session.store must be memory or redis, got %q", cfg.Session.Store)
	}
	if _, err := time.LoadLocation(cfg.Assistant.Timezone); err != nil {
		return fmt.Errorf("assistant.timezone: %w", err)
	}
	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters")
	}
	// Without providers the assistant classifies by keywords only.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// JSON numbers decode as float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
