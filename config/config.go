/*
 * config.go, part of brook.
 *
 * Copyright 2026 The brook Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config holds the configuration of the bondtab command, read from YAML.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	gro "github.com/rmera/brook/grotop"
	"github.com/rmera/brook/stream"
)

const (
	DefaultStreamWidth = stream.DefaultWidth
	DefaultBins        = 20
)

type Config struct {
	Topology TopologyConfig `yaml:"topology"`
	Stream   StreamConfig   `yaml:"stream"`
	Dump     DumpConfig     `yaml:"dump"`
	Plot     PlotConfig     `yaml:"plot"`
}

type TopologyConfig struct {
	Sections []string `yaml:"sections"`
	OneBased bool     `yaml:"one_based"`
	Defines  []string `yaml:"defines"`
}

type StreamConfig struct {
	Width int `yaml:"width"`
}

type DumpConfig struct {
	Level int    `yaml:"level"`
	File  string `yaml:"file"` //if set, dumps also go to this file, the log target of the tables
}

type PlotConfig struct {
	Bins int `yaml:"bins"` //0 picks the square root of the number of bonds
}

func DefaultConfig() *Config {
	return &Config{
		Topology: TopologyConfig{Sections: slices.Clone(gro.Sections)},
		Stream:   StreamConfig{Width: DefaultStreamWidth},
		Plot:     PlotConfig{Bins: DefaultBins},
	}
}

// Load reads the YAML file in path on top of the default configuration, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for _, s := range c.Topology.Sections {
		if !slices.Contains(gro.Sections, s) {
			return fmt.Errorf("unsupported section %q, must be one of %v", s, gro.Sections)
		}
	}
	if c.Stream.Width <= 0 {
		return fmt.Errorf("stream width must be positive, got %d", c.Stream.Width)
	}
	if c.Plot.Bins < 0 {
		return fmt.Errorf("plot bins can't be negative, got %d", c.Plot.Bins)
	}
	return nil
}

// ReadOptions returns the topology reading options in the configuration.
func (c *Config) ReadOptions() *gro.ReadOptions {
	return &gro.ReadOptions{
		Sections: c.Topology.Sections,
		OneBased: c.Topology.OneBased,
		Defines:  c.Topology.Defines,
	}
}
