package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"port"`
	AIProvider     string        `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint     string        `mapstructure:"ai_endpoint"`
	Model          string        `mapstructure:"model"`
	OpenAIAPIKey   string        `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey   string        `mapstructure:"GEMINI_API_KEY"`
	MaxDocChars    int           `mapstructure:"max_doc_chars"`
	PreviewSize    int           `mapstructure:"preview_size"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-4o")
	v.SetDefault("max_doc_chars", 40000)
	v.SetDefault("preview_size", 300)
	v.SetDefault("request_timeout", "120s")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
