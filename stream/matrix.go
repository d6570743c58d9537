/*
 * matrix.go, part of brook.
 *
 * Copyright 2026 The brook Authors
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

package stream

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/brook/bondparams"
)

// ParameterMatrix returns a BondCount()xParametersPerBond() matrix with the parameters of
// tab, one bond per row. Every row of tab must have been set, and both dimensions must be
// larger than zero.
func ParameterMatrix(tab *bondparams.Table) (*mat.Dense, error) {
	r, c := tab.BondCount(), tab.ParametersPerBond()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("stream/ParameterMatrix: table %s has dimensions %dx%d", tab.BondName(), r, c)
	}
	if err := checkComplete(tab, "ParameterMatrix"); err != nil {
		return nil, err
	}
	data := make([]float64, 0, r*c)
	for _, v := range tab.BondParameters() {
		data = append(data, v...)
	}
	return mat.NewDense(r, c, data), nil
}

// Summary contains statistics for one parameter over all the bonds of a table.
type Summary struct {
	Parameter int
	Mean      float64
	StdDev    float64 //sample standard deviation, 0 for a single bond
	Min       float64
	Max       float64
}

func (S Summary) String() string {
	return fmt.Sprintf("%3d mean: %14.6e sd: %14.6e min: %14.6e max: %14.6e", S.Parameter, S.Mean, S.StdDev, S.Min, S.Max)
}

// Summarize returns one Summary per parameter of tab.
func Summarize(tab *bondparams.Table) ([]Summary, error) {
	m, err := ParameterMatrix(tab)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	ret := make([]Summary, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		mean, sd := stat.MeanStdDev(col, nil)
		if r < 2 || math.IsNaN(sd) {
			sd = 0
		}
		ret[j] = Summary{Parameter: j, Mean: mean, StdDev: sd, Min: floats.Min(col), Max: floats.Max(col)}
	}
	return ret, nil
}

// Column returns a copy of the values of parameter param over all the bonds of tab.
func Column(tab *bondparams.Table, param int) ([]float64, error) {
	if param < 0 || param >= tab.ParametersPerBond() {
		return nil, fmt.Errorf("stream/Column: parameter %d out of range for table %s with %d parameters", param, tab.BondName(), tab.ParametersPerBond())
	}
	m, err := ParameterMatrix(tab)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, param, m), nil
}
