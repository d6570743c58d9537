/*
 * header.go, part of brook.
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
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var fi func(string) []string = strings.Fields

// Returns a string without gromacs comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\r\n\t ")
}

// spaces and tabs, which \p{Zs} alone misses
const blank = `[\p{Zs}\t]*`

type topHeader struct {
	wany *regexp.Regexp
	spec map[string]*regexp.Regexp
}

func newTopHeader() *topHeader {
	T := new(topHeader)
	T.wany = regexp.MustCompile(`^\[` + blank + `.*` + blank + `\]$`)
	T.spec = make(map[string]*regexp.Regexp)
	for _, v := range Sections {
		T.spec[v] = regexp.MustCompile(`^\[` + blank + v + blank + `\]$`)
	}
	return T
}

// Returns true if the (already cleaned) line is a Gromacs header.
func (T *topHeader) Is(line string) bool {
	return T.wany.MatchString(line)
}

// Returns the bonded section the header line opens, or an empty string
// if the line is not a header, or is the header of a section we don't read.
func (T *topHeader) Which(line string) string {
	if !T.wany.MatchString(line) {
		return ""
	}
	for k, v := range T.spec {
		if v.MatchString(line) {
			return k
		}
	}
	return ""
}

// cond keeps track of the #ifdef/#ifndef/#else/#endif blocks of a topology,
// depending on the defined flags.
type cond struct {
	stack []bool
}

// read returns true if the line should be read. Preprocessor lines always return false.
func (c *cond) read(line string, defines []string) bool {
	f := fi(line)
	switch f[0] {
	case "#ifdef", "#ifndef":
		def := len(f) > 1 && slices.Contains(defines, f[1])
		c.stack = append(c.stack, def == (f[0] == "#ifdef"))
		return false
	case "#else":
		if len(c.stack) > 0 {
			c.stack[len(c.stack)-1] = !c.stack[len(c.stack)-1]
		}
		return false
	case "#endif":
		if len(c.stack) > 0 {
			c.stack = c.stack[:len(c.stack)-1]
		}
		return false
	}
	if strings.HasPrefix(line, "#") {
		return false //#include, #define and friends. We don't follow includes.
	}
	return !slices.Contains(c.stack, false)
}

func parseints(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, f)
	}
	return r, nil
}
