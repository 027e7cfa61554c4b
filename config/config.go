package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int      `yaml:"port"`
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"server"`

	LLM struct {
		Provider string `yaml:"provider"` // "openai" (default) or "gemini"
	} `yaml:"llm"`

	Openai struct {
		ApiKey     string `yaml:"apiKey"`
		Model      string `yaml:"model"`
		ImageModel string `yaml:"imageModel"`
	} `yaml:"openai"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	JWT struct {
		Secret      string `yaml:"secret"`
		ExpiryHours int    `yaml:"expiryHours"`
	} `yaml:"jwt"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return &cfg, nil
}
