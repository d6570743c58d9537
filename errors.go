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

package brook

import "errors"

// Error is the interface for errors that the packages in this module implement. The Decorate
// method allows to add and retrieve info from the error as it is passed up, without changing its
// type or wrapping it around something else. The errors also work with errors.Is and errors.As.
type Error interface {
	Error() string
	//Decorate adds deco to the list of callers, unless deco is empty, and returns the list.
	//Elements should be in the form "FunctionName" or "FunctionName: Extra info".
	Decorate(string) []string
}

// ErrDecorate adds caller to the decorations of err, if err (or an error it wraps)
// implements Error. err is returned unchanged otherwise, so it is safe to use with
// any error, including nil.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
