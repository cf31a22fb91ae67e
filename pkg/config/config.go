package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for lexilens-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords, API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Hosted AI collaborators
	Vision VisionConfig `yaml:"vision"`
	Chat   ChatConfig   `yaml:"chat"`
	Speech SpeechConfig `yaml:"speech"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"lexilens"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"lexilens_engine"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// VisionConfig holds the vision-language recognizer endpoint settings.
type VisionConfig struct {
	BaseURL string `yaml:"base_url" env:"VISION_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"VISION_MODEL" env-default:"gpt-4o"`
	APIKey  string `yaml:"-" env:"VISION_API_KEY"` // Secret - not in YAML

	// Language is the translation target for identified objects.
	Language string `yaml:"language" env:"VISION_LANGUAGE" env-default:"Mandarin Chinese"`
}

// ChatConfig holds the conversational model settings.
// Provider selects the wire protocol: "openai" (any OpenAI-compatible
// endpoint) or "anthropic".
type ChatConfig struct {
	Provider string `yaml:"provider" env:"CHAT_PROVIDER" env-default:"openai"`
	// BaseURL is optional; when empty each provider uses its own default
	// endpoint.
	BaseURL string `yaml:"base_url" env:"CHAT_BASE_URL"`
	Model    string `yaml:"model" env:"CHAT_MODEL" env-default:"gpt-4o-mini"`
	APIKey   string `yaml:"-" env:"CHAT_API_KEY"` // Secret - not in YAML
}

// SpeechConfig holds the text-to-speech endpoint settings.
type SpeechConfig struct {
	BaseURL string `yaml:"base_url" env:"SPEECH_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"SPEECH_MODEL" env-default:"tts-1"`
	Voice   string `yaml:"voice" env:"SPEECH_VOICE" env-default:"alloy"`
	APIKey  string `yaml:"-" env:"SPEECH_API_KEY"` // Secret - not in YAML
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations that cannot serve requests.
func (c *Config) validate() error {
	if c.Vision.Model == "" {
		return fmt.Errorf("vision.model must be set")
	}
	switch c.Chat.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("chat.provider must be openai or anthropic, got %q", c.Chat.Provider)
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
