package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the settings of the command.
type config struct {
	// Prompt is the interactive prompt.
	Prompt string `yaml:"prompt"`
	// History is the path of the history file. Empty disables history.
	History string `yaml:"history"`
	// HistorySize is the maximum number of history entries kept.
	HistorySize int `yaml:"history_size"`
	// OtherInfo shows alternative renderings of results.
	OtherInfo bool `yaml:"other_info"`
}

// loadConfig reads calc/config.yaml from the user's configuration directory.
// A missing file gives the defaults.
func loadConfig() (*config, error) {
	cfg := config{Prompt: "> ", OtherInfo: true, HistorySize: 1000}
	dir, err := os.UserConfigDir()
	if err != nil {
		return &cfg, nil
	}
	cfg.History = filepath.Join(dir, "calc", "history")
	if err := readConfig(&cfg, filepath.Join(dir, "calc", "config.yaml")); err != nil {
		return nil, err
	}
	if cfg.History != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.History), 0o755); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func readConfig(cfg *config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
