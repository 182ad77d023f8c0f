/*
 * ninfo.go, part of cafetools.
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
	"math"

	"github.com/spf13/cobra"

	cafe "github.com/rmera/cafetools"
)

var (
	ninfoLo     int
	ninfoHi     int
	ninfoAll    bool
	ninfoStrict bool
	ninfoOut    string
)

var ninfoCmd = &cobra.Command{
	Use:   "ninfo NINFO",
	Short: "Print the native contacts of a ninfo file",
	Long: `Reads a native-info file and prints its native contact block. With --lo
and/or --hi, only the contacts between particles with global indexes in
that range are kept. With --all, every kind of record is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runNinfo,
}

func init() {
	ninfoCmd.Flags().IntVar(&ninfoLo, "lo", 1, "lowest particle index of the contacts kept")
	ninfoCmd.Flags().IntVar(&ninfoHi, "hi", math.MaxInt, "highest particle index of the contacts kept")
	ninfoCmd.Flags().BoolVar(&ninfoAll, "all", false, "print all the blocks, not only the contacts")
	ninfoCmd.Flags().BoolVar(&ninfoStrict, "strict", false, "fail on lines that can't be parsed instead of skipping them")
	ninfoCmd.Flags().StringVarP(&ninfoOut, "output", "o", "", "write to this file instead of the standard output")
	rootCmd.AddCommand(ninfoCmd)
}

func runNinfo(cmd *cobra.Command, args []string) error {
	N, err := readNinfo(args[0], ninfoStrict)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("lo") || cmd.Flags().Changed("hi") {
		N = N.ContactsInRange(ninfoLo, ninfoHi)
		log.Info().Int("lo", ninfoLo).Int("hi", ninfoHi).Int("contacts", len(N.Contacts)).Msg("contacts filtered")
	}
	if ninfoOut != "" {
		return cafe.WriteFile(ninfoOut, N, ninfoAll)
	}
	if ninfoAll {
		return N.WriteAll(cmd.OutOrStdout())
	}
	_, err = N.WriteTo(cmd.OutOrStdout())
	return err
}
