package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the scraper configuration
type Config struct {
	Scrape struct {
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		DelaySeconds   int    `yaml:"delay_seconds"`
	} `yaml:"scrape"`

	Oreilly struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"oreilly"`

	Shoeisha struct {
		BaseURL  string `yaml:"base_url"`
		MaxPages int    `yaml:"max_pages"`
	} `yaml:"shoeisha"`

	Gihyo struct {
		BaseURL    string   `yaml:"base_url"`
		MaxPages   int      `yaml:"max_pages"`
		Categories []string `yaml:"categories"`
	} `yaml:"gihyo"`

	Output struct {
		Path   string `yaml:"path"`
		Format string `yaml:"format"` // "json" or "csv"
	} `yaml:"output"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.Scrape.TimeoutSeconds = 30
	cfg.Scrape.DelaySeconds = 1
	cfg.Oreilly.BaseURL = "https://www.oreilly.co.jp/catalog/"
	cfg.Shoeisha.BaseURL = "https://www.shoeisha.co.jp/"
	cfg.Shoeisha.MaxPages = 500
	cfg.Gihyo.BaseURL = "https://gihyo.jp/"
	cfg.Gihyo.MaxPages = 100
	cfg.Gihyo.Categories = []string{
		"0602", // Java
		"0611", // JavaScript
		"0603", // Python, PHP, Ruby, Perl
		"0601", // C, C++
		"0604", // C#, VB, .NET
		"0605", // iOS, Android
		"0612", // machine learning, data analysis
		"0607", // web application development
		"0608", // SE essays
		"0609", // development methods, testing, UML
		"0701", // server, infra, network
		"0704", // UNIX, Linux, FreeBSD
		"0705", // database, SQL
	}
	cfg.Output.Path = "tech-books.json"
	cfg.Output.Format = "json"
	return cfg
}
