package model

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Input  InputConfig  `toml:"input"`
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
}

type InputConfig struct {
	File string `toml:"file,omitempty"`
}

type SearchConfig struct {
	MaxCandidates int64 `toml:"max_candidates,omitempty"`
}

type CacheConfig struct {
	Size int `toml:"size,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{Size: 64},
	}
}

func parseConfig(f io.Reader) (*Config, error) {
	out := DefaultConfig()
	_, err := toml.NewDecoder(f).Decode(out)
	return out, err
}

// LoadConfigFromFile reads a TOML config. A relative input file is
// resolved against the directory holding the config.
func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, err
	}
	if c.Input.File != "" && !filepath.IsAbs(c.Input.File) {
		c.Input.File = filepath.Clean(filepath.Join(filepath.Dir(path), c.Input.File))
	}
	return c, nil
}
