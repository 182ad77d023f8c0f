/*
 * contacts.go, part of cafetools.
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
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmera/cafetools/cafestat"
	"github.com/rmera/cafetools/traj"
)

var contactsFactor float64

var contactsCmd = &cobra.Command{
	Use:   "contacts NINFO TRAJECTORY",
	Short: "Tell which native contacts are formed in each frame",
	Long: `Prints, as CSV, one row per frame of the trajectory: the step followed by a 1
for each native contact that is formed and a 0 for each that isn't. A contact
is formed if its particles are at most factor times its native length apart.
Columns follow the contact indexes.`,
	Args: cobra.ExactArgs(2),
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().Float64Var(&contactsFactor, "factor", 0, "formation factor (default from the configuration, 1.2)")
	rootCmd.AddCommand(contactsCmd)
}

func runContacts(cmd *cobra.Command, args []string) error {
	contacts, err := readContacts(args[0])
	if err != nil {
		return err
	}
	R, err := openTrajectory(args[1])
	if err != nil {
		return err
	}
	defer R.Close()
	factor := contactsFactor
	if factor == 0 {
		factor = cfg.Contacts.FormationFactor
	}
	w := csv.NewWriter(cmd.OutOrStdout())
	row := make([]string, len(contacts)+1)
	row[0] = "step"
	for i, c := range contacts {
		row[i+1] = strconv.Itoa(c.Index)
	}
	if err := w.Write(row); err != nil {
		return err
	}
	frames := 0
	_, err = cafestat.Map(R, func(f *traj.Frame) (float64, error) {
		formed, err := cafestat.Formation(f.Positions, contacts, factor)
		if err != nil {
			return 0, err
		}
		row[0] = strconv.Itoa(f.Step)
		for i, ok := range formed {
			row[i+1] = "0"
			if ok {
				row[i+1] = "1"
			}
		}
		frames++
		return 0, w.Write(row)
	})
	w.Flush()
	if err != nil {
		return err
	}
	log.Info().Int("frames", frames).Int("contacts", len(contacts)).Float64("factor", factor).Msg("contact formation written")
	return w.Error()
}
