package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the user's persistent configuration preferences.
type Config struct {
	Provider   string   `json:"provider,omitempty"`   // a4f (default) or anthropic
	APIKeys    []string `json:"api_keys,omitempty"`   // credential fallback list, tried in order
	BaseURL    string   `json:"base_url,omitempty"`   // optional override for API base URL
	Mode       string   `json:"mode,omitempty"`       // default conversation mode
	Typewriter bool     `json:"typewriter"`           // replay bot answers line by line
	ExportDir  string   `json:"export_dir,omitempty"` // where /export writes transcripts
}

// Manager handles loading and saving the configuration.
type Manager struct {
	configDir string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config dir: %w", err)
	}

	return &Manager{
		configDir: filepath.Join(configDir, "steveai"),
	}, nil
}

// GetConfigPath returns the absolute path to the config.json file.
func (m *Manager) GetConfigPath() string {
	return filepath.Join(m.configDir, "config.json")
}

// Load reads the configuration from disk.
// If the file does not exist, it returns an empty Config and no error.
func (m *Manager) Load() (*Config, error) {
	path := m.GetConfigPath()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config json: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to disk with restricted permissions (0600);
// the file may carry API keys.
func (m *Manager) Save(cfg *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.GetConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Exists checks if the configuration file has been created.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.GetConfigPath())
	return !os.IsNotExist(err)
}

// ApplyEnv exports the stored credentials as process environment variables
// so the provider factory can pick them up. Explicit environment values win
// over the config file.
func (m *Manager) ApplyEnv(cfg *Config) {
	if cfg.Provider != "" && os.Getenv("LLM_PROVIDER") == "" {
		os.Setenv("LLM_PROVIDER", cfg.Provider)
	}
	if len(cfg.APIKeys) > 0 && os.Getenv("STEVEAI_API_KEYS") == "" {
		os.Setenv("STEVEAI_API_KEYS", strings.Join(cfg.APIKeys, ","))
	}
	if cfg.BaseURL != "" && os.Getenv("STEVEAI_BASE_URL") == "" {
		os.Setenv("STEVEAI_BASE_URL", cfg.BaseURL)
	}
}
