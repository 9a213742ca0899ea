// Package config describes the YAML configuration of the odbc-bridge tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

type LoggerConfig struct {
	Level LogLevel `yaml:"level"`
}

type RenderConfig struct {
	// NullLiteral overrides the string printed for NULL cells.
	NullLiteral string `yaml:"null_literal"`
}

type Config struct {
	Logger *LoggerConfig `yaml:"logger"`
	Render RenderConfig  `yaml:"render"`
}

func NewConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Logger != nil && cfg.Logger.Level == "" {
		cfg.Logger.Level = LogLevelInfo
	}

	return &cfg, nil
}
