/*
 * config.go, part of cafetools.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

// Package config holds the settings of the cafetools commands, read from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/rmera/cafetools/cafeplot"
	"github.com/rmera/cafetools/cafestat"
	"github.com/rmera/cafetools/ts"
)

// Config is the whole cafetools configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Contacts   ContactsConfig   `toml:"contacts"`
	TimeSeries TimeSeriesConfig `toml:"ts"`
	Plot       PlotConfig       `toml:"plot"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type ContactsConfig struct {
	// A contact is formed if its particles are at most FormationFactor
	// times its native length apart.
	FormationFactor float64 `toml:"formation_factor"`
}

type TimeSeriesConfig struct {
	HeaderLines int `toml:"header_lines"`
}

// PlotConfig gives the plot size in centimeters.
type PlotConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Level: "info", Pretty: true},
		Contacts:   ContactsConfig{FormationFactor: cafestat.DefaultFormationFactor},
		TimeSeries: TimeSeriesConfig{HeaderLines: ts.HeaderLines},
		Plot:       PlotConfig{Width: cafeplot.DefaultSize, Height: cafeplot.DefaultSize},
	}
}

// Load reads the configuration in path. Settings missing from the file keep
// their default values. If path is empty, or the file doesn't exist, the defaults
// are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings make sense.
func (c *Config) Validate() error {
	if c.Contacts.FormationFactor <= 0 {
		return fmt.Errorf("contacts.formation_factor must be positive, not %g", c.Contacts.FormationFactor)
	}
	if c.TimeSeries.HeaderLines < 0 {
		return fmt.Errorf("ts.header_lines can't be negative (%d)", c.TimeSeries.HeaderLines)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, not %gx%g", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// Save writes the configuration to path as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}
