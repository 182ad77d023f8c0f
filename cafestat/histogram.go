/*
 * histogram.go, part of cafetools.
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

package cafestat

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts values, such as the Q-scores of a trajectory, in bins.
// Bin i holds the values v with dividers[i] <= v < dividers[i+1], except for the
// last bin, which also holds the values equal to the last divider.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// EvenDividers returns the n+1 dividers of n bins of the same width between lo and hi.
func EvenDividers(lo, hi float64, n int) []float64 {
	if n < 1 {
		panic(fmt.Sprintf("cafestat: histogram with %d bins", n))
	}
	return floats.Span(make([]float64, n+1), lo, hi)
}

// NewHistogram returns a histogram with the given dividers, which must be
// sorted, with the values in rawdata, which can be nil. Values out of the
// range of the dividers are omitted.
func NewHistogram(dividers []float64, rawdata []float64) *Histogram {
	if len(dividers) < 2 || !slices.IsSorted(dividers) {
		panic("cafestat: histogram dividers must be at least 2, sorted")
	}
	H := &Histogram{dividers: slices.Clone(dividers)}
	H.rehisto(rawdata)
	return H
}

func (H *Histogram) rehisto(rawdata []float64) {
	data := slices.Clone(rawdata)
	slices.Sort(data)
	last := H.dividers[len(H.dividers)-1]
	//stat.Histogram panics with values off limits, and leaves the last divider out.
	mini, _ := slices.BinarySearch(data, H.dividers[0])
	maxi, _ := slices.BinarySearch(data, last)
	ontop := 0
	for i := maxi; i < len(data) && data[i] == last; i++ {
		ontop++
	}
	data = data[mini:maxi]
	H.histo = stat.Histogram(nil, H.dividers, data, nil)
	H.histo[len(H.histo)-1] += float64(ontop)
	H.total = len(data) + ontop
}

// AddData adds the given values to the histogram.
func (H *Histogram) AddData(point ...float64) {
	norma := H.normalized
	if norma {
		H.UnNormalize()
	}
	last := len(H.dividers) - 1
	for _, v := range point {
		if v < H.dividers[0] || v > H.dividers[last] {
			continue
		}
		i, _ := slices.BinarySearch(H.dividers, v)
		//BinarySearch gives the first divider >= v; v belongs to the bin that starts at or before it.
		if i == len(H.dividers) || H.dividers[i] != v {
			i--
		}
		H.histo[min(i, last-1)]++
		H.total++
	}
	if norma {
		H.Normalize()
	}
}

// Total returns the number of values in the histogram.
func (H *Histogram) Total() int { return H.total }

// Normalized returns true if the histogram is normalized.
func (H *Histogram) Normalized() bool { return H.normalized }

// Normalize divides each bin by the total number of values, so the bins add up to 1.
func (H *Histogram) Normalize() { H.normaunnorma(true) }

// UnNormalize returns the bins to counts.
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

// Dividers returns a copy of the dividers.
func (H *Histogram) Dividers() []float64 {
	return floats.ScaleTo(make([]float64, len(H.dividers)), 1, H.dividers)
}

// Centers returns the center of each bin.
func (H *Histogram) Centers() []float64 {
	ret := make([]float64, len(H.histo))
	for i := range ret {
		ret[i] = (H.dividers[i] + H.dividers[i+1]) / 2
	}
	return ret
}

// View returns the bins. Changing them changes the histogram.
func (H *Histogram) View() []float64 { return H.histo }

func (H *Histogram) Sum() float64 { return floats.Sum(H.histo) }

// FreeEnergy returns -kT ln(p) for the probability p of each bin, shifted so the lowest
// value is 0. Empty bins give +Inf.
func (H *Histogram) FreeEnergy(kT float64) []float64 {
	ret := make([]float64, len(H.histo))
	if H.total == 0 {
		for i := range ret {
			ret[i] = math.Inf(1)
		}
		return ret
	}
	counts := H.histo
	if H.normalized {
		counts = floats.ScaleTo(make([]float64, len(H.histo)), float64(H.total), H.histo)
	}
	for i, c := range counts {
		ret[i] = -kT * math.Log(c/float64(H.total))
	}
	if lowest := floats.Min(ret); !math.IsInf(lowest, 1) {
		floats.AddConst(-lowest, ret)
	}
	return ret
}

// String returns the bins in two lines, ranges and values.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Normalized: %v, Total: %d\n%s\n%s", H.normalized, H.total, strings.Join(d, " "), strings.Join(h, " "))
}

// Histogram returns a histogram of the values of the series in n even bins between lo and hi.
func (S *Series) Histogram(lo, hi float64, n int) *Histogram {
	return NewHistogram(EvenDividers(lo, hi, n), S.Values)
}
