/*
 * qscore.go, part of cafetools.
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

var qscorePNG string

var qscoreCmd = &cobra.Command{
	Use:   "qscore NINFO TRAJECTORY",
	Short: "Compute the Q-score of each frame",
	Long: `Prints the time and the Q-score of each frame of the trajectory: the fraction
of native contacts whose particles are closer than the native length.`,
	Args: cobra.ExactArgs(2),
	RunE: runQScore,
}

func init() {
	qscoreCmd.Flags().StringVar(&qscorePNG, "png", "", "also plot the Q-score to this file")
	rootCmd.AddCommand(qscoreCmd)
}

func runQScore(cmd *cobra.Command, args []string) error {
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
	return printSeries(cmd, s, "qscore", qscorePNG)
}
