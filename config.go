// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lru

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config describes a cache in a TOML document:
//
//	size = 1024
type Config struct {
	Size int `toml:"size"`
}

// Validate reports whether the config can build a cache.
func (cfg Config) Validate() error {
	if cfg.Size <= 0 {
		return fmt.Errorf("size %d: %w", cfg.Size, ErrInvalidSize)
	}
	return nil
}

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

// ParseConfig decodes and validates a TOML document.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a cache sized by cfg.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithOpts(cfg.Size, opts...)
}
