/*
 * flatten.go, part of brook.
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

// Package stream turns complete bondparams tables into the forms the force
// computation consumes: padded float32 streams, gonum matrices, and summaries
// and plots of the parameters for diagnostics.
package stream

import (
	"fmt"

	"github.com/rmera/brook/bondparams"
)

// DefaultWidth is the number of components in a stream element (a float4).
const DefaultWidth = 4

// MaxParticleIndex is the largest particle index that survives the conversion to
// float32 unchanged (2^24).
const MaxParticleIndex = 1 << 24

// Streams holds the contents of a table flattened to float32 buffers. Each bond uses
// ParticleStride elements of Particles and ParameterStride elements of Parameters;
// the strides are the row widths rounded up to a multiple of Width, and the padding is zero.
type Streams struct {
	Name            string
	Bonds           int
	Width           int
	ParticleStride  int
	ParameterStride int
	Particles       []float32
	Parameters      []float32
}

func stride(n, width int) int {
	return ((n + width - 1) / width) * width
}

// checkComplete returns an error naming the first unset row of tab, if any.
func checkComplete(tab *bondparams.Table, caller string) error {
	if u := tab.Unfilled(); len(u) > 0 {
		return fmt.Errorf("stream/%s: table %s has %d unset rows (first: %d)", caller, tab.BondName(), len(u), u[0])
	}
	return nil
}

// Flatten returns the streams for tab, using elements of width components.
// Every row of tab must have been set, and every particle index must be in
// [-MaxParticleIndex, MaxParticleIndex].
func Flatten(tab *bondparams.Table, width int) (*Streams, error) {
	if width <= 0 {
		return nil, fmt.Errorf("stream/Flatten: invalid stream width %d", width)
	}
	if err := checkComplete(tab, "Flatten"); err != nil {
		return nil, err
	}
	for i, row := range tab.ParticleIndices() {
		for _, v := range row {
			if v > MaxParticleIndex || v < -MaxParticleIndex {
				return nil, fmt.Errorf("stream/Flatten: table %s, bond %d: particle index %d can't be represented exactly as float32", tab.BondName(), i, v)
			}
		}
	}
	S := &Streams{
		Name:            tab.BondName(),
		Bonds:           tab.BondCount(),
		Width:           width,
		ParticleStride:  stride(tab.ParticlesPerBond(), width),
		ParameterStride: stride(tab.ParametersPerBond(), width),
	}
	S.Particles = make([]float32, S.Bonds*S.ParticleStride)
	S.Parameters = make([]float32, S.Bonds*S.ParameterStride)
	for i, row := range tab.ParticleIndices() {
		for j, v := range row {
			S.Particles[i*S.ParticleStride+j] = float32(v)
		}
	}
	for i, row := range tab.BondParameters() {
		for j, v := range row {
			S.Parameters[i*S.ParameterStride+j] = float32(v)
		}
	}
	return S, nil
}

// ParticleElement returns the elementth stream element of the particles of bond i.
func (S *Streams) ParticleElement(i, element int) []float32 {
	start := i*S.ParticleStride + element*S.Width
	return S.Particles[start : start+S.Width]
}

// ParameterElement returns the elementth stream element of the parameters of bond i.
func (S *Streams) ParameterElement(i, element int) []float32 {
	start := i*S.ParameterStride + element*S.Width
	return S.Parameters[start : start+S.Width]
}
