package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the config file parrot looks for in the
// working directory.
const ConfigFile = "parrot.config.yml"

type Config struct {
	Port          int    `yaml:"port"`
	TemplatesDir  string `yaml:"templatesDir"`
	StaticDir     string `yaml:"staticDir"`
	OutputDir     string `yaml:"outputDir"`
	SecretKey     string `yaml:"secretKey"`
	MinifyEnabled bool   `yaml:"minify"`
	DebugHeaders  bool   `yaml:"debugHeaders"`
	DebugLogs     bool   `yaml:"debugLogs"`
}

func defaultConfig() *Config {
	return &Config{
		Port:          8080,
		TemplatesDir:  "templates",
		StaticDir:     "static",
		OutputDir:     "./dist",
		SecretKey:     "",
		MinifyEnabled: false,
		DebugHeaders:  false,
		DebugLogs:     false,
	}
}

var LoadConfig = func(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig()
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./dist"
	}

	return &cfg
}
