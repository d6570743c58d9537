/*
 * errors.go, part of brook.
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

package bondparams

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is matched (with errors.Is) by the errors SetBond returns for
	// bond indexes outside [0, BondCount()).
	ErrInvalidIndex = errors.New("invalid bond index")
	// ErrWidth is matched by the errors returned when a row is given fewer particle
	// indexes or parameters than the table width.
	ErrWidth = errors.New("row shorter than table width")
	// ErrDimension is matched by the errors New returns for negative dimensions.
	ErrDimension = errors.New("negative table dimension")
)

// IndexError is returned by SetBond when the bond index is out of range. It carries
// the offending index and the number of bonds in the table.
type IndexError struct {
	Name  string //name of the table
	Index int
	Bound int
	deco  []string
}

func (E *IndexError) Error() string {
	if E.Index < 0 {
		return fmt.Sprintf("bondparams: %s: bond index %d is < 0 (bonds: %d)", E.Name, E.Index, E.Bound)
	}
	return fmt.Sprintf("bondparams: %s: bond index %d is >= %d", E.Name, E.Index, E.Bound)
}

// Is makes errors.Is(err, ErrInvalidIndex) true for IndexErrors.
func (E *IndexError) Is(target error) bool { return target == ErrInvalidIndex }

func (E *IndexError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Error is the general error for width and dimension problems. It wraps
// ErrWidth or ErrDimension.
type Error struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, caller, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}}
}

func (E *Error) Error() string {
	return fmt.Sprintf("bondparams: %s: %s", E.kind, E.message)
}

func (E *Error) Unwrap() error { return E.kind }

func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
