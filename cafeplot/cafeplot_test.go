/*
 * cafeplot_test.go, part of cafetools.
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

package cafeplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	cafe "github.com/rmera/cafetools"
)

func TestSeries(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "q.png")
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 0.9, 0.7, 0.75, 0.4}
	if err := Series(xs, ys, "Q-score", "time", "Q", name, 0, 0); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Errorf("no plot written: %v", err)
	}
	if err := Series(nil, nil, "", "", "", name, 0, 0); !errors.Is(err, ErrNoData) {
		Te.Errorf("empty series: %v", err)
	}
	if err := Series(xs, ys[:2], "", "", "", name, 0, 0); err == nil {
		Te.Errorf("mismatched series accepted")
	}
}

func TestContactMap(Te *testing.T) {
	m := mat.NewSymDense(3, []float64{
		0, 3.8, 6.5,
		3.8, 0, 3.8,
		6.5, 3.8, 0,
	})
	c := cafe.Contact{Index: 1, Pair: cafe.NewGroup(cafe.Particle{Unit: 1, Index: 1, IntraIndex: 1}, cafe.Particle{Unit: 1, Index: 3, IntraIndex: 3}), Length: 6.5}
	far := cafe.Contact{Index: 2, Pair: cafe.NewGroup(cafe.Particle{Unit: 1, Index: 1, IntraIndex: 1}, cafe.Particle{Unit: 1, Index: 30, IntraIndex: 30}), Length: 6.5}
	name := filepath.Join(Te.TempDir(), "map.png")
	if err := ContactMap(m, []cafe.Contact{c, far}, "map", name, 8, 8); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
	if err := ContactMap(nil, nil, "", name, 0, 0); !errors.Is(err, ErrNoData) {
		Te.Errorf("nil map: %v", err)
	}
}
