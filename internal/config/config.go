package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

// Config holds the user-editable settings, written with defaults on
// first launch.
type Config struct {
	DBPath         string `toml:"db_path"`
	LogPath        string `toml:"log_path"`
	QuoteEndpoint  string `toml:"quote_endpoint"`
	KeyringService string `toml:"keyring_service"`
}

// ResolvePath returns the config file location under the XDG config
// directory, falling back to ~/.config.
func ResolvePath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfigFileName
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "ischedule", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing one with defaults if
// it doesn't exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		QuoteEndpoint:  "https://zenquotes.io/api/random",
		KeyringService: "ischedule",
	}
}
