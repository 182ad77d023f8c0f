/*
 * ts.go, part of cafetools.
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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/cafetools/cafeplot"
	"github.com/rmera/cafetools/internal/zfile"
	"github.com/rmera/cafetools/ts"
)

var ts2csvCmd = &cobra.Command{
	Use:   "ts2csv TS",
	Short: "Convert a CafeMol time series to CSV",
	Long: `Converts the whole-system rows of a CafeMol time series (.ts) file to CSV,
with the columns step, tempk, radg, etot, velet, qscore and rmsd.
Use "-" to read from the standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runTS2CSV,
}

var tscatOut string

var tscatCmd = &cobra.Command{
	Use:   "tscat TS...",
	Short: "Concatenate CafeMol time series",
	Long: `Concatenates time series files. The header of the first file is kept and
those of the following files are dropped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTSCat,
}

var (
	plotColumn string
	plotOut    string
)

var plotCmd = &cobra.Command{
	Use:   "plot TS",
	Short: "Plot a column of a CafeMol time series against the step",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	tscatCmd.Flags().StringVarP(&tscatOut, "output", "o", "", "write to this file instead of the standard output")
	plotCmd.Flags().StringVarP(&plotColumn, "column", "c", "qscore", "column to plot (tempk, radg, etot, velet, qscore or rmsd)")
	plotCmd.Flags().StringVarP(&plotOut, "output", "o", "", "image file to write; its extension sets the format")
	_ = plotCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(ts2csvCmd, tscatCmd, plotCmd)
}

func runTS2CSV(cmd *cobra.Command, args []string) error {
	r, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	n, err := ts.ToCSV(r, cmd.OutOrStdout(), cfg.TimeSeries.HeaderLines)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	log.Debug().Str("file", args[0]).Int("rows", n).Msg("time series converted")
	return nil
}

func runTSCat(cmd *cobra.Command, args []string) (err error) {
	rs := make([]io.Reader, 0, len(args))
	for _, name := range args {
		r, err := openInput(cmd, name)
		if err != nil {
			return err
		}
		defer r.Close()
		rs = append(rs, r)
	}
	var w io.Writer = cmd.OutOrStdout()
	if tscatOut != "" {
		f, err := zfile.Create(tscatOut)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}
	return ts.Cat(w, cfg.TimeSeries.HeaderLines, rs...)
}

func runPlot(cmd *cobra.Command, args []string) error {
	r, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	snaps, err := ts.NewReader(r, cfg.TimeSeries.HeaderLines).ReadAll()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	xs := make([]float64, len(snaps))
	ys := make([]float64, len(snaps))
	for i, s := range snaps {
		xs[i] = float64(s.Step)
		if ys[i], err = s.Value(plotColumn); err != nil {
			return err
		}
	}
	if err := cafeplot.Series(xs, ys, args[0], "step", plotColumn, plotOut, cfg.Plot.Width, cfg.Plot.Height); err != nil {
		return err
	}
	log.Info().Str("file", plotOut).Int("points", len(xs)).Msg("plot written")
	return nil
}
