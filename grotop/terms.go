/*
 * terms.go, part of brook.
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

package gro

import (
	"fmt"
	"slices"
	"strconv"
)

// The bonded sections of a topology that are read. Everything else is skipped.
var Sections = []string{"bonds", "angles", "dihedrals", "constraints"}

// particles in each term of a section
var sectionParticles = map[string]int{
	"bonds":       2,
	"constraints": 2,
	"angles":      3,
	"dihedrals":   4,
}

// Kind describes the table layout for a kind of bonded term: the section it is read from,
// the Gromacs function types that map to it, and the number of particles and parameters per term.
type Kind struct {
	Name       string
	Section    string
	Functypes  []int
	Particles  int
	Parameters int
}

// Kinds are the supported kinds of terms. Parameters are kept in the order and units
// of the topology file.
var Kinds = []Kind{
	{Name: "HarmonicBond", Section: "bonds", Functypes: []int{1}, Particles: 2, Parameters: 2},              //b0 kb
	{Name: "HarmonicAngle", Section: "angles", Functypes: []int{1}, Particles: 3, Parameters: 2},            //theta0 k
	{Name: "PeriodicTorsion", Section: "dihedrals", Functypes: []int{1, 4, 9}, Particles: 4, Parameters: 3}, //phi k multiplicity
	{Name: "HarmonicImproper", Section: "dihedrals", Functypes: []int{2}, Particles: 4, Parameters: 2},      //xi0 k
	{Name: "RBTorsion", Section: "dihedrals", Functypes: []int{3}, Particles: 4, Parameters: 6},             //C0-C5
	{Name: "Constraint", Section: "constraints", Functypes: []int{1, 2}, Particles: 2, Parameters: 1},       //b0
}

// KindOf returns the kind of term for the given section and function type.
func KindOf(section string, functype int) (Kind, bool) {
	for _, v := range Kinds {
		if v.Section == section && slices.Contains(v.Functypes, functype) {
			return v, true
		}
	}
	return Kind{}, false
}

// KindByName returns the kind with the given name.
func KindByName(name string) (Kind, bool) {
	for _, v := range Kinds {
		if v.Name == name {
			return v, true
		}
	}
	return Kind{}, false
}

// Term is one line of a bonded section of a topology.
type Term struct {
	Kind     string
	Functype int
	IDs      []int     //as in the file
	Params   []float64 //only the ones the kind uses. B-state parameters are dropped.
	Line     int       //1-based line in the topology, 0 if unknown
}

// Returns a term containing the information in the GromacsTop-formatted string s,
// given that the string is part of the section header. Parameters must be given
// explicitly in the line, as parameters from bondtypes/angletypes are not resolved.
func TermFromGroTop(s, header string) (*Term, error) {
	np, ok := sectionParticles[header]
	if !ok {
		return nil, fmt.Errorf("unsupported section %q", header)
	}
	l := fi(cleanString(s))
	if len(l) < np+1 {
		return nil, fmt.Errorf("%s term needs %d atoms and a function type, got %d fields", header, np, len(l))
	}
	T := new(Term)
	var err error
	T.IDs, err = parseints(l[:np]...)
	if err != nil {
		return nil, fmt.Errorf("can't parse atoms in %q: %w", s, err)
	}
	T.Functype, err = strconv.Atoi(l[np])
	if err != nil {
		return nil, fmt.Errorf("can't parse function type in %q: %w", s, err)
	}
	k, ok := KindOf(header, T.Functype)
	if !ok {
		return nil, fmt.Errorf("function type %d not supported for %s", T.Functype, header)
	}
	T.Kind = k.Name
	if len(l)-np-1 < k.Parameters {
		return nil, fmt.Errorf("%s term needs %d parameters, got %d (parameters from [ *types ] sections are not supported)", k.Name, k.Parameters, len(l)-np-1)
	}
	T.Params, err = parsefloats(l[np+1 : np+1+k.Parameters]...)
	if err != nil {
		return nil, fmt.Errorf("can't parse parameters in %q: %w", s, err)
	}
	return T, nil
}

// ZeroBased returns the atom indexes of the term as 0-based indexes. If shift is
// true, the indexes in the file are taken as 1-based and shifted down by one;
// otherwise they are returned unchanged. It returns an error if any of the
// resulting indexes is negative.
func (T *Term) ZeroBased(shift bool) ([]int, error) {
	add := 0
	if shift {
		add = -1
	}
	r := make([]int, 0, len(T.IDs))
	for _, v := range T.IDs {
		if v+add < 0 {
			return nil, fmt.Errorf("line %d: atom index %d is invalid", T.Line, v)
		}
		r = append(r, v+add)
	}
	return r, nil
}
