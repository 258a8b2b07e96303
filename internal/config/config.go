package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultSystemPrompt = "You are an all-knowing assistant with knowledge on almost any topic. Answer the user's question clearly and concisely."

type Config struct {
	ServerAddr string `yaml:"server_addr"`

	DBDriver string `yaml:"db_driver"`
	DBDSN    string `yaml:"db_dsn"`

	LLMProvider  string  `yaml:"llm_provider"`
	OpenAIKey    string  `yaml:"openai_api_key"`
	LLMBaseURL   string  `yaml:"openai_base_url"`
	ChatModel    string  `yaml:"llm_model"`
	Temperature  float64 `yaml:"llm_temperature"`
	SystemPrompt string  `yaml:"llm_system_prompt"`

	LogLevel string `yaml:"log_level"`
}

func defaults() *Config {
	return &Config{
		ServerAddr:   ":8080",
		DBDriver:     "postgres",
		DBDSN:        "host=localhost port=5432 user=postgres password=postgres dbname=askqa sslmode=disable",
		LLMProvider:  "openai",
		ChatModel:    "gpt-3.5-turbo",
		Temperature:  0.7,
		SystemPrompt: defaultSystemPrompt,
		LogLevel:     "info",
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML-файл из
// ASKQA_CONFIG (если задан), затем переменные окружения.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("ASKQA_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ServerAddr = getenv("SERVER_ADDR", cfg.ServerAddr)
	cfg.DBDriver = getenv("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = getenv("PG_CONN", cfg.DBDSN)
	cfg.DBDSN = getenv("DB_DSN", cfg.DBDSN)
	cfg.LLMProvider = getenv("LLM_PROVIDER", cfg.LLMProvider)
	cfg.OpenAIKey = getenv("OPENAI_API_KEY", cfg.OpenAIKey)
	cfg.LLMBaseURL = getenv("OPENAI_BASE_URL", cfg.LLMBaseURL)
	cfg.ChatModel = getenv("LLM_MODEL", cfg.ChatModel)
	cfg.SystemPrompt = getenv("LLM_SYSTEM_PROMPT", cfg.SystemPrompt)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		cfg.Temperature = t
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DBDriver)
	}
	switch c.LLMProvider {
	case "openai", "langchain":
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLMProvider)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
