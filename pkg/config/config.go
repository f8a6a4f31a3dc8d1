package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Cache struct {
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
		MemoryMaxSize int `yaml:"memory_max_size"`
	} `yaml:"cache"`
	NewsAPI struct {
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url"`
		PageSize int           `yaml:"page_size"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"newsapi"`
	OpenRouter struct {
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model"`
		Temperature float64       `yaml:"temperature"`
		MaxTokens   int           `yaml:"max_tokens"`
		Referer     string        `yaml:"referer"`
		Title       string        `yaml:"title"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"openrouter"`
	Serper struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"serper"`
	AlphaVantage struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"alphavantage"`
	Finnhub struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"finnhub"`
	Mock struct {
		Delay time.Duration `yaml:"delay"`
	} `yaml:"mock"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// API keys are secrets and normally arrive via env, not YAML.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.NewsAPI.APIKey = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		c.OpenRouter.APIKey = v
	}
	if v := os.Getenv("SERPER_API_KEY"); v != "" {
		c.Serper.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		c.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		c.PublicBaseURL = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.NewsAPI.BaseURL == "" {
		c.NewsAPI.BaseURL = "https://newsapi.org/v2"
	}
	if c.NewsAPI.PageSize == 0 {
		c.NewsAPI.PageSize = 15
	}
	if c.NewsAPI.CacheTTL == 0 {
		c.NewsAPI.CacheTTL = time.Hour
	}
	if c.OpenRouter.BaseURL == "" {
		c.OpenRouter.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = "mistralai/mixtral-8x7b-instruct"
	}
	if c.OpenRouter.Temperature == 0 {
		c.OpenRouter.Temperature = 0.2
	}
	if c.OpenRouter.MaxTokens == 0 {
		c.OpenRouter.MaxTokens = 800
	}
	if c.Serper.BaseURL == "" {
		c.Serper.BaseURL = "https://google.serper.dev"
	}
	if c.AlphaVantage.BaseURL == "" {
		c.AlphaVantage.BaseURL = "https://www.alphavantage.co"
	}
	if c.Mock.Delay == 0 {
		c.Mock.Delay = 1500 * time.Millisecond
	}
}

// Validate checks if the configuration is valid. Provider credentials are
// deliberately not required: their absence switches the service to mock mode
// or skips individual fallback providers.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	return nil
}

// CredentialsAvailable reports whether the two credentials required for live
// insights (news search and chat completion) are both configured.
func (c *Config) CredentialsAvailable() bool {
	return c.NewsAPI.APIKey != "" && c.OpenRouter.APIKey != ""
}
