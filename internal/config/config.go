package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Session  SessionConfig  `mapstructure:"session"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// GeminiConfig defines the generative-text provider configuration.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// SessionConfig defines the cookie-session configuration. The secret is
// deliberately not defaulted: it must come from the environment or a config
// file.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Secure bool          `mapstructure:"secure"`
	MaxAge time.Duration `mapstructure:"max_age"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing Gemini API key or session secret is an error at startup rather
// than a failure surfaced on first use.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars, e.g. gemini.api_key -> GEMINI_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "NutriGenie")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	// Registered empty so AutomaticEnv can resolve them during Unmarshal.
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("session.secret", "")
	viper.SetDefault("session.secure", false)
	viper.SetDefault("session.max_age", "720h")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults cover everything.
		err = nil
	} else if err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if config.Gemini.APIKey == "" {
		return config, errors.New("gemini.api_key (GEMINI_API_KEY) is required")
	}
	if config.Session.Secret == "" {
		return config, errors.New("session.secret (SESSION_SECRET) is required")
	}
	return config, nil
}
