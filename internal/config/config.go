// Package config loads the user's tictactoe settings from a yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	AppName         = "go-minimax"
	FileName        = "config.yaml"
	FilePermissions = 0644
	DirPermissions  = 0755
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	// Bot search depth, -1 is unlimited
	Depth   int    `yaml:"depth"`
	Starter string `yaml:"starter"`
	// 0 picks a random seed on every run
	Seed  int64 `yaml:"seed,omitempty"`
	Color bool  `yaml:"color"`
}

func Default() Config {
	return Config{
		Depth:   minimax.DefaultDepthLimit,
		Starter: "human",
		Color:   true,
	}
}

// $XDG_CONFIG_HOME/go-minimax/config.yaml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Read the config at path, fields missing from the file keep their default values.
// A file that doesn't exist yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, FilePermissions)
}

func (c Config) Validate() error {
	// depth 0 would stop every search at the root, leaving the bot without a move
	if c.Depth < minimax.DefaultDepthLimit || c.Depth == 0 {
		return fmt.Errorf("%w: depth %d, must be -1 or at least 1", ErrInvalid, c.Depth)
	}

	switch strings.ToLower(c.Starter) {
	case "human", "bot":
	default:
		return fmt.Errorf("%w: starter %q, must be human or bot", ErrInvalid, c.Starter)
	}
	return nil
}
