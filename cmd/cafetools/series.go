/*
 * series.go, part of cafetools.
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

	"github.com/rmera/cafetools/cafeplot"
	"github.com/rmera/cafetools/cafestat"
)

// printSeries writes s as two tab-separated columns, time and name, with a header.
// If png is not empty, the series is also plotted to that file.
func printSeries(cmd *cobra.Command, s *cafestat.Series, name, png string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "time\t%s\n", name)
	for i, v := range s.Values {
		fmt.Fprintf(out, "%s\t%s\n", strconv.FormatFloat(s.Times[i], 'g', -1, 64), strconv.FormatFloat(v, 'g', -1, 64))
	}
	if len(s.Values) > 0 {
		mean, std := s.Mean()
		log.Info().Int("frames", len(s.Values)).Float64("mean", mean).Float64("std", std).Msg(name)
	}
	if png == "" {
		return nil
	}
	return cafeplot.Series(s.Times, s.Values, "", "time", name, png, cfg.Plot.Width, cfg.Plot.Height)
}
