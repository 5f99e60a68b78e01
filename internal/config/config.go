package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level findash.yaml configuration.
type Config struct {
	Timezone  string          `yaml:"timezone"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Reminders RemindersConfig `yaml:"reminders"`
	History   HistoryConfig   `yaml:"history"`
}

// SnapshotConfig locates the data snapshot the dashboard boots from.
type SnapshotConfig struct {
	Path string `yaml:"path"`
}

// RemindersConfig caps how many rows the reminder lists print.
type RemindersConfig struct {
	PayableListLimit        int `yaml:"payable_list_limit"`
	EventListLimit          int `yaml:"event_list_limit"`
	ReconciliationListLimit int `yaml:"reconciliation_list_limit"`
}

// HistoryConfig controls the status-change audit log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Load reads a findash.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default(snapshotPath string) *Config {
	return &Config{
		Timezone: "America/Sao_Paulo",
		Snapshot: SnapshotConfig{
			Path: snapshotPath,
		},
		Reminders: RemindersConfig{
			PayableListLimit:        8,
			EventListLimit:          8,
			ReconciliationListLimit: 8,
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     ".",
		},
	}
}
