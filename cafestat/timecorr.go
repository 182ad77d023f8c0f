/*
 * timecorr.go, part of cafetools.
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
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the mean and the standard deviation of the values of the series.
func (S *Series) Mean() (mean, std float64) {
	return stat.MeanStdDev(S.Values, nil)
}

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

// CrossCorrelation returns the normalized cross-correlation of c1 and c2, which
// must have the same length, for lags 0 to len(c1)-1, computed with FFTs.
// If c1 and c2 are the same, it is the autocorrelation function.
// The result is NaN if either series is constant.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	if len(c1) != len(c2) {
		return nil, fmt.Errorf("cafestat: series of different lengths %d and %d", len(c1), len(c2))
	}
	n := len(c1)
	if n == 0 {
		return nil, nil
	}
	c1mean, c1std := stat.MeanStdDev(c1, nil)
	c2mean, c2std := stat.MeanStdDev(c2, nil)
	//population, not sample, standard deviations, so lag 0 of an autocorrelation is 1.
	pop := math.Sqrt(float64(n-1) / float64(n))
	c1std *= pop
	c2std *= pop
	//zero-padding to twice the length avoids the circular wrap-around.
	c1pad := make([]complex128, 2*n)
	c2pad := make([]complex128, 2*n)
	for i := range c1 {
		c1pad[i] = complex(c1[i]-c1mean, 0)
		c2pad[i] = complex(c2[i]-c2mean, 0)
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	cmplxMulConj(c1pad, c2pad)
	f.Sequence(c1pad, c1pad)
	ret := make([]float64, n)
	for i := range ret {
		//Sequence is not normalized, hence the extra len(c1pad).
		ret[i] = real(c1pad[i]) / float64(len(c1pad)) / (c1std * c2std) / float64(n)
	}
	return ret, nil
}

// AutoCorrelation returns the autocorrelation function of the values of the series.
func (S *Series) AutoCorrelation() ([]float64, error) {
	return CrossCorrelation(S.Values, S.Values)
}
