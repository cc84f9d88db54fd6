package config

import (
	"fmt"
	"os"
	"strings"
	"time"

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
	Database DatabaseConfig

	// Auth
	JWT    JWTConfig
	Cookie CookieConfig

	// Command pipeline
	Voice  VoiceConfig
	LLM    LLMConfig
	Speech SpeechConfig

	// Channels
	Telegram TelegramConfig
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

// DatabaseConfig selects the SQL driver. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type CookieConfig struct {
	Name string
}

type VoiceConfig struct {
	Locale                 string
	CommandRateLimitPerMin int
	MaxCommandLength       int
	MaxQueryLength         int
}

// SpeechConfig selects the transcriber. An empty Provider disables transcription.
type SpeechConfig struct {
	Provider        string
	CredentialsPath string
	APIKey          string
	Model           string
	LanguageCode    string
	Endpoint        string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	cfg.Database.AutoMigrate = viper.GetBool("database.auto_migrate")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	// Auth
	cfg.JWT.SecretKey = expandEnvVar(viper.GetString("jwt.secret_key"))
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Voice
	cfg.Voice.Locale = viper.GetString("voice.locale")
	cfg.Voice.CommandRateLimitPerMin = viper.GetInt("voice.command_rate_limit_per_min")
	cfg.Voice.MaxCommandLength = viper.GetInt("voice.max_command_length")
	cfg.Voice.MaxQueryLength = viper.GetInt("voice.max_query_length")

	// Speech
	cfg.Speech.Provider = viper.GetString("speech.provider")
	cfg.Speech.CredentialsPath = viper.GetString("speech.credentials_path")
	cfg.Speech.APIKey = expandEnvVar(viper.GetString("speech.api_key"))
	cfg.Speech.Model = viper.GetString("speech.model")
	cfg.Speech.LanguageCode = viper.GetString("speech.language_code")
	cfg.Speech.Endpoint = viper.GetString("speech.endpoint")
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Speech.CredentialsPath == "" {
		cfg.Speech.CredentialsPath = creds
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

const minJWTSecretLength = 32

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if len(c.JWT.SecretKey) < minJWTSecretLength {
		return fmt.Errorf("jwt.secret_key must be at least %d characters", minJWTSecretLength)
	}
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	switch c.Speech.Provider {
	case "", "google", "gemini":
	default:
		return fmt.Errorf("speech.provider must be google, gemini or empty, got %q", c.Speech.Provider)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")
	viper.SetDefault("database.auto_migrate", true)

	viper.SetDefault("jwt.issuer", "fridge-inventory")
	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("cookie.name", "fridge_session")

	viper.SetDefault("voice.locale", "pl")
	viper.SetDefault("voice.command_rate_limit_per_min", 20)
	viper.SetDefault("voice.max_command_length", 500)
	viper.SetDefault("voice.max_query_length", 200)

	viper.SetDefault("speech.language_code", "pl-PL")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig requires at least one enabled provider and a unique
// positive priority for each enabled one.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("llm.providers is empty")
	}

	owners := make(map[int]string, len(cfg.Providers))
	for i, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("llm.providers[%d]: name is required", i)
		}
		if !p.Enabled {
			continue
		}
		if p.Priority <= 0 {
			return fmt.Errorf("llm provider %s: priority must be positive", p.Name)
		}
		if other, ok := owners[p.Priority]; ok {
			return fmt.Errorf("llm provider %s: priority %d already used by %s", p.Name, p.Priority, other)
		}
		owners[p.Priority] = p.Name
	}

	if len(owners) == 0 {
		return fmt.Errorf("llm.providers has no enabled provider")
	}
	return nil
}
