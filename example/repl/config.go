package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const appName = "readline-repl"

// Config is the on-disk configuration of the REPL. Flags take precedence.
type Config struct {
	History    string   `toml:"history"`
	Backend    string   `toml:"backend"`
	Theme      string   `toml:"theme"`
	MaxHistory int      `toml:"max_history"`
	Keywords   []string `toml:"keywords"`
}

var defaultKeywords = []string{
	"and", "as", "assert", "async", "await", "break", "class", "continue",
	"def", "del", "elif", "else", "except", "False", "finally", "for", "from",
	"global", "if", "import", "in", "is", "lambda", "None", "nonlocal", "not",
	"or", "pass", "print", "raise", "return", "True", "try", "while", "with",
	"yield",
}

func defaultConfig() Config {
	return Config{
		Backend:    "auto",
		Theme:      "default",
		MaxHistory: 1000,
		Keywords:   append([]string(nil), defaultKeywords...),
	}
}

func configPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(configHome, appName, "config.toml"), nil
}

// loadConfig reads path over the defaults. A missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = append([]string(nil), defaultKeywords...)
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 1000
	}
	return cfg, nil
}
