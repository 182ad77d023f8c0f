/*
 * contactmap.go, part of cafetools.
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
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cafe "github.com/rmera/cafetools"
	"github.com/rmera/cafetools/cafeplot"
	"github.com/rmera/cafetools/cafestat"
	"github.com/rmera/cafetools/traj"
)

var (
	mapSkipTail int
	mapNinfo    string
	mapPNG      string
)

var contactmapCmd = &cobra.Command{
	Use:   "contactmap TRAJECTORY",
	Short: "Print the distances between all particles in the last frame",
	Long: `Prints the distance between every pair of particles in the last frame of the
trajectory, as "i,j,distance" lines with 0-based indexes, and a blank line
after each i. The last --skip-tail particles (for instance, ions or ligands)
are left out. With --png, a heat map is drawn instead, with the native
contacts of --ninfo, if given, marked on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactMap,
}

func init() {
	contactmapCmd.Flags().IntVar(&mapSkipTail, "skip-tail", 0, "number of particles at the end of each frame to leave out")
	contactmapCmd.Flags().StringVar(&mapNinfo, "ninfo", "", "ninfo file with the native contacts to mark on the heat map")
	contactmapCmd.Flags().StringVar(&mapPNG, "png", "", "draw a heat map to this file instead of printing the distances")
	rootCmd.AddCommand(contactmapCmd)
}

func runContactMap(cmd *cobra.Command, args []string) error {
	R, err := openTrajectory(args[0])
	if err != nil {
		return err
	}
	defer R.Close()
	last, err := traj.Last(R)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	n := len(last.Positions) - mapSkipTail
	if n <= 0 {
		return fmt.Errorf("skipping %d of %d particles leaves nothing", mapSkipTail, len(last.Positions))
	}
	m := cafestat.DistanceMap(last.Positions, n)
	if mapPNG != "" {
		var contacts []cafe.Contact
		if mapNinfo != "" {
			if contacts, err = readContacts(mapNinfo); err != nil {
				return err
			}
		}
		return cafeplot.ContactMap(m, contacts, fmt.Sprintf("Step %d", last.Step), mapPNG, cfg.Plot.Width, cfg.Plot.Height)
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(w, "%d,%d,%s\n", i, j, strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
