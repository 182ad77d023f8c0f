/*
 * rg.go, part of cafetools.
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
	"github.com/spf13/cobra"

	"github.com/rmera/cafetools/cafestat"
)

var rgPNG string

var rgCmd = &cobra.Command{
	Use:   "rg TRAJECTORY",
	Short: "Compute the radius of gyration of each frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runRg,
}

func init() {
	rgCmd.Flags().StringVar(&rgPNG, "png", "", "also plot the radius of gyration to this file")
	rootCmd.AddCommand(rgCmd)
}

func runRg(cmd *cobra.Command, args []string) error {
	R, err := openTrajectory(args[0])
	if err != nil {
		return err
	}
	defer R.Close()
	s, err := cafestat.RadiiOfGyration(R)
	if err != nil {
		return err
	}
	return printSeries(cmd, s, "rg", rgPNG)
}
