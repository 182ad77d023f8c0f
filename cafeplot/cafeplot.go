/*
 * cafeplot.go, part of cafetools.
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

// Package cafeplot draws time series and contact maps from cafetools analyses.
package cafeplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	cafe "github.com/rmera/cafetools"
)

// DefaultSize is the side, in centimeters, used when a plot is requested with size 0.
const DefaultSize = 12

var ErrNoData = errors.New("cafeplot: no data to plot")

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, file string, w, h float64) error {
	if w <= 0 {
		w = DefaultSize
	}
	if h <= 0 {
		h = w
	}
	if err := p.Save(vg.Length(w)*vg.Centimeter, vg.Length(h)*vg.Centimeter, file); err != nil {
		return fmt.Errorf("cafeplot: saving %s: %w", file, err)
	}
	return nil
}

// Series plots ys against xs as a line, and saves the plot to file, w x h cm in size.
// The format is given by the extension of file (png, svg, pdf, eps...).
func Series(xs, ys []float64, title, xlabel, ylabel, file string, w, h float64) error {
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("cafeplot: %d x values and %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	p := basicPlot(title, xlabel, ylabel)
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(l)
	return save(p, file, w, h)
}

// distanceGrid shows a distance matrix as a plotter.GridXYZ. Columns
// and rows are the 1-based particle indexes.
type distanceGrid struct {
	m *mat.SymDense
}

func (g distanceGrid) Dims() (c, r int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g distanceGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g distanceGrid) X(c int) float64 { return float64(c + 1) }
func (g distanceGrid) Y(r int) float64 { return float64(r + 1) }

// ContactMap draws the distance matrix m as a heat map, and marks on it the
// given native contacts, which can be nil. The plot is saved to file, w x h cm in size.
func ContactMap(m *mat.SymDense, contacts []cafe.Contact, title, file string, w, h float64) error {
	if m == nil || m.SymmetricDim() == 0 {
		return ErrNoData
	}
	p := basicPlot(title, "Particle", "Particle")
	hm := plotter.NewHeatMap(distanceGrid{m}, palette.Heat(12, 1))
	if hm.Min == hm.Max {
		//the palette can't be spread over a zero-width range.
		hm.Max = hm.Min + 1
	}
	p.Add(hm)
	pts := make(plotter.XYs, 0, len(contacts))
	n := m.SymmetricDim()
	for _, c := range contacts {
		i, j := c.Pair.At(0).Index, c.Pair.At(1).Index
		if i > n || j > n {
			continue
		}
		//native contacts are marked above the diagonal.
		pts = append(pts, plotter.XY{X: float64(min(i, j)), Y: float64(max(i, j))})
	}
	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		s.GlyphStyle.Radius = vg.Points(1)
		p.Add(s)
	}
	return save(p, file, w, h)
}
