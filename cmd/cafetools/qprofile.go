/*
 * qprofile.go, part of cafetools.
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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmera/cafetools/cafestat"
)

var (
	qprofileBins int
	qprofileKT   float64
)

var qprofileCmd = &cobra.Command{
	Use:   "qprofile NINFO TRAJECTORY",
	Short: "Compute the free energy profile along the Q-score",
	Long: `Bins the Q-scores of the frames of the trajectory between 0 and 1 and prints,
for each bin, its center, the fraction of frames in it, and the free energy
-kT ln(p), shifted so the lowest is 0. Empty bins have an infinite free energy.`,
	Args: cobra.ExactArgs(2),
	RunE: runQProfile,
}

func init() {
	qprofileCmd.Flags().IntVar(&qprofileBins, "bins", 20, "number of bins")
	qprofileCmd.Flags().Float64Var(&qprofileKT, "kt", 1, "thermal energy, in the units wanted for the free energy")
	rootCmd.AddCommand(qprofileCmd)
}

func runQProfile(cmd *cobra.Command, args []string) error {
	if qprofileBins < 1 {
		return fmt.Errorf("--bins must be positive, not %d", qprofileBins)
	}
	contacts, err := readContacts(args[0])
	if err != nil {
		return err
	}
	R, err := openTrajectory(args[1])
	if err != nil {
		return err
	}
	defer R.Close()
	s, err := cafestat.QScores(R, contacts)
	if err != nil {
		return err
	}
	H := s.Histogram(0, 1, qprofileBins)
	fe := H.FreeEnergy(qprofileKT)
	H.Normalize()
	out := cmd.OutOrStdout()
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	fmt.Fprintln(out, "q\tp\tfree_energy")
	for i, c := range H.Centers() {
		fmt.Fprintf(out, "%s\t%s\t%s\n", f(c), f(H.View()[i]), f(fe[i]))
	}
	return nil
}
