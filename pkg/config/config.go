package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type AppConfig struct {
	Language   string `json:"language"`
	WindowSize struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"window_size"`
	PageSize int    `json:"page_size"`
	LogFile  string `json:"log_file"`
}

const appDir = "asthroapp"

// Defaults returns the configuration used when no file exists yet.
func Defaults() *AppConfig {
	cfg := &AppConfig{Language: "es", PageSize: 5}
	cfg.WindowSize.Width = 1100
	cfg.WindowSize.Height = 650
	return cfg
}

func LoadConfig() (*AppConfig, error) {
	configPath, _ := os.UserConfigDir()
	configPath = filepath.Join(configPath, appDir, "config.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Defaults(), err
	}

	cfg := Defaults()
	return cfg, json.Unmarshal(data, cfg)
}

func SaveConfig(cfg *AppConfig) error {
	configPath, _ := os.UserConfigDir()
	configPath = filepath.Join(configPath, appDir)
	os.MkdirAll(configPath, 0755)
	configPath = filepath.Join(configPath, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
