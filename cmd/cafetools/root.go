/*
 * root.go, part of cafetools.
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

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cafe "github.com/rmera/cafetools"
	"github.com/rmera/cafetools/internal/config"
	"github.com/rmera/cafetools/internal/logger"
	"github.com/rmera/cafetools/internal/zfile"
	"github.com/rmera/cafetools/traj/stf"
)

var version = "dev"

var (
	cfgFile  string
	logLevel string
	verbose  bool

	cfg = config.Default()
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "cafetools",
	Short: "Tools for CafeMol native-info files and trajectories",
	Long: `cafetools reads and writes CafeMol native-info (ninfo) files, and computes
Q-scores, contact formation, radii of gyration and contact maps from STF
trajectories. Files ending in .gz or .zst are decompressed on the fly.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "same as --log-level debug")
}

// setup loads the configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	log = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func readNinfo(name string, strict bool) (*cafe.NativeInfo, error) {
	opts := []cafe.LoadOption{cafe.WithLogger(log.With().Str("file", name).Logger())}
	if strict {
		opts = append(opts, cafe.Strict())
	}
	N, err := cafe.ReadFile(name, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", name).Int("contacts", len(N.Contacts)).Int("records", N.Len()).Msg("native info loaded")
	return N, nil
}

// readContacts returns the native contacts in the ninfo file name, sorted by index.
func readContacts(name string) ([]cafe.Contact, error) {
	N, err := readNinfo(name, false)
	if err != nil {
		return nil, err
	}
	if len(N.Contacts) == 0 {
		return nil, fmt.Errorf("%s: no native contacts", name)
	}
	N.SortContacts()
	return N.Contacts, nil
}

func openTrajectory(name string) (*stf.Reader, error) {
	R, header, err := stf.Open(name, log.With().Str("file", name).Logger())
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", name).Int("particles", R.Len()).Interface("header", header).Msg("trajectory opened")
	return R, nil
}

// openInput opens name for reading, or returns the standard input of cmd if name is "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return zfile.Open(name)
}
