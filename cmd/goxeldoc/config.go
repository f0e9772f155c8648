package main

import (
	"os"

	"github.com/fordream/goxel/scene"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string `yaml:"log_level"`
	// HistoryLimit caps the number of undo snapshots, 0 keeps them all.
	HistoryLimit int  `yaml:"history_limit"`
	ExportWidth  int  `yaml:"export_width"`
	ExportHeight int  `yaml:"export_height"`
	PrintMetrics bool `yaml:"print_metrics"`
}

// LoadConfig reads a YAML config file. An empty path gives the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.ExportWidth <= 0 {
		c.ExportWidth = scene.DefaultExportSize
	}
	if c.ExportHeight <= 0 {
		c.ExportHeight = scene.DefaultExportSize
	}
}
