/*
 * table.go, part of brook.
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

// Package bondparams implements a fixed-shape table that stores, for each bond of a
// force-field term (a harmonic bond, an angle, a torsion...), the indexes of the particles
// in the bond and the parameters of its potential.
//
// A Table is created with its dimensions, filled with one SetBond call per bond, and
// read afterwards by whatever builds the force computation. Tables do no locking: if they are
// filled and read from different goroutines, the caller must make sure the last SetBond
// happens before the reads.
package bondparams

import (
	"fmt"
	"io"
	"math"
)

// Table holds the particle indexes and parameters of the bonds of one force-field term.
// Both are stored row-major in flat slices, one row per bond. A row is empty until
// it is set with SetBond.
type Table struct {
	name       string
	nbonds     int
	nparticles int
	nparams    int
	ids        []int
	params     []float64
	filled     []bool
	log        io.Writer
}

// New returns a table named name, for bondCount bonds with particlesPerBond particles
// and parametersPerBond parameters each. All rows start empty. The optional log is
// only kept, so it can be retrieved with LogTarget; the table never writes to it.
// It returns an error matching ErrDimension if any dimension is negative, or if
// the size of either row storage overflows an int.
func New(name string, particlesPerBond, parametersPerBond, bondCount int, log ...io.Writer) (*Table, error) {
	if particlesPerBond < 0 || parametersPerBond < 0 || bondCount < 0 {
		return nil, newError(ErrDimension, "New", "%s: particles/bond: %d parameters/bond: %d bonds: %d", name, particlesPerBond, parametersPerBond, bondCount)
	}
	if overflows(bondCount, particlesPerBond) || overflows(bondCount, parametersPerBond) {
		return nil, newError(ErrDimension, "New", "%s: %d bonds with %d particles and %d parameters each is too large", name, bondCount, particlesPerBond, parametersPerBond)
	}
	T := &Table{
		name:       name,
		nbonds:     bondCount,
		nparticles: particlesPerBond,
		nparams:    parametersPerBond,
		ids:        make([]int, bondCount*particlesPerBond),
		params:     make([]float64, bondCount*parametersPerBond),
		filled:     make([]bool, bondCount),
	}
	if len(log) > 0 {
		T.log = log[0]
	}
	return T, nil
}

// BondName returns the name of the force-field term.
func (T *Table) BondName() string { return T.name }

// BondCount returns the number of bonds (rows) in the table.
func (T *Table) BondCount() int { return T.nbonds }

// ParticlesPerBond returns the number of particle indexes per row.
func (T *Table) ParticlesPerBond() int { return T.nparticles }

// ParametersPerBond returns the number of parameters per row.
func (T *Table) ParametersPerBond() int { return T.nparams }

// LogTarget returns the diagnostic sink of the table, or nil if none was set.
func (T *Table) LogTarget() io.Writer { return T.log }

// SetLogTarget replaces the diagnostic sink of the table. w can be nil.
func (T *Table) SetLogTarget(w io.Writer) { T.log = w }

// SetBond sets row bondIndex to the first ParticlesPerBond() elements of particleIndices
// and the first ParametersPerBond() elements of bondParameters, in order. Extra elements
// are ignored. Setting a row that was already set overwrites it.
// If bondIndex is out of range, an *IndexError (matching ErrInvalidIndex) is returned.
// If either slice is too short, the error matches ErrWidth. In both cases the table is not modified.
func (T *Table) SetBond(bondIndex int, particleIndices []int, bondParameters []float64) error {
	if bondIndex < 0 || bondIndex >= T.nbonds {
		return &IndexError{Name: T.name, Index: bondIndex, Bound: T.nbonds, deco: []string{"SetBond"}}
	}
	if len(particleIndices) < T.nparticles {
		return newError(ErrWidth, "SetBond", "%s: bond %d: %d particle indexes given, %d needed", T.name, bondIndex, len(particleIndices), T.nparticles)
	}
	if len(bondParameters) < T.nparams {
		return newError(ErrWidth, "SetBond", "%s: bond %d: %d parameters given, %d needed", T.name, bondIndex, len(bondParameters), T.nparams)
	}
	copy(T.ids[bondIndex*T.nparticles:], particleIndices[:T.nparticles])
	copy(T.params[bondIndex*T.nparams:], bondParameters[:T.nparams])
	T.filled[bondIndex] = true
	return nil
}

// Filled returns true if row i has been set. It panics if i is out of range.
func (T *Table) Filled(i int) bool {
	T.checkRow(i, "Filled")
	return T.filled[i]
}

// Complete returns true if every row in the table has been set.
func (T *Table) Complete() bool {
	return len(T.Unfilled()) == 0
}

// Unfilled returns the indexes of the rows that have not been set yet, in increasing order.
func (T *Table) Unfilled() []int {
	var ret []int
	for i, v := range T.filled {
		if !v {
			ret = append(ret, i)
		}
	}
	return ret
}

// ParticleRow returns the particle indexes of bond i. The slice is empty if the
// row has not been set, and it shares storage with the table, so it must not be
// modified. It panics if i is out of range.
func (T *Table) ParticleRow(i int) []int {
	T.checkRow(i, "ParticleRow")
	return row(T.ids, i, T.nparticles, T.filled[i])
}

// ParameterRow is like ParticleRow, but for the parameters of bond i.
func (T *Table) ParameterRow(i int) []float64 {
	T.checkRow(i, "ParameterRow")
	return row(T.params, i, T.nparams, T.filled[i])
}

// ParticleIndices returns one row of particle indexes per bond. Rows that have not been
// set are empty. The rows are views on the table and must not be modified.
func (T *Table) ParticleIndices() [][]int {
	ret := make([][]int, T.nbonds)
	for i := range ret {
		ret[i] = row(T.ids, i, T.nparticles, T.filled[i])
	}
	return ret
}

// BondParameters returns one row of parameters per bond, with the same rules as
// ParticleIndices.
func (T *Table) BondParameters() [][]float64 {
	ret := make([][]float64, T.nbonds)
	for i := range ret {
		ret[i] = row(T.params, i, T.nparams, T.filled[i])
	}
	return ret
}

// String returns the full contents of the table, as ContentsString.
func (T *Table) String() string {
	return T.ContentsString(0)
}

// overflows returns true if a*b, both non-negative, does not fit in an int.
func overflows(a, b int) bool {
	return b != 0 && a > math.MaxInt/b
}

func (T *Table) checkRow(i int, caller string) {
	if i < 0 || i >= T.nbonds {
		panic(fmt.Sprintf("bondparams/Table.%s: row %d out of range for table %s with %d bonds", caller, i, T.name, T.nbonds)) //programming error
	}
}

// row returns the ith row of width w in flat, capped so appending to it
// can't reach the next row. Unset rows are returned with length 0.
func row[S ~[]E, E any](flat S, i, w int, filled bool) S {
	start := i * w
	if !filled {
		return flat[start:start:start]
	}
	return flat[start : start+w : start+w]
}
