package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	envAPIURL      = "AGENDA_API_URL"
	envTimezone    = "AGENDA_TIMEZONE"
	defaultBaseURL = "http://localhost:8080"
)

// fileConfig is ~/.config/agenda/config.toml.
type fileConfig struct {
	BaseURL string `toml:"base_url"`
}

var configPath = defaultConfigPath

func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "agenda", "config.toml"), nil
}

// loadFileConfig returns an empty config when the file does not exist.
func loadFileConfig() (fileConfig, error) {
	path, err := configPath()
	if err != nil {
		return fileConfig{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg fileConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// resolveBaseURL picks the first non-empty of flag, env and file.
func resolveBaseURL(flag, env, file string) string {
	for _, v := range []string{flag, env, file} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return defaultBaseURL
}
