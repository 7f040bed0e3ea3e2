package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	OutputDir  string `yaml:"output_dir"`
	FrameCount int    `yaml:"frame_count"`
	Workers    int    `yaml:"workers"`

	Ollama   OllamaConfig   `yaml:"ollama"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// OllamaConfig points at the local vision model used for captioning
type OllamaConfig struct {
	BaseURL string `yaml:"base_url"`
	Port    int    `yaml:"port"`
	Model   string `yaml:"model"`
}

// PostgresConfig enables the optional caption store
type PostgresConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		OutputDir:  "output_frames",
		FrameCount: 5,
		Workers:    4,
		Ollama: OllamaConfig{
			BaseURL: "http://localhost",
			Port:    11434,
			Model:   "llama3.2-vision:11b",
		},
		Postgres: PostgresConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			DBName:  "vidprompt",
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./vidprompt.yaml",
		"./vidprompt.yml",
		filepath.Join(os.Getenv("HOME"), ".vidprompt", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
