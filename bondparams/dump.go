/*
 * dump.go, part of brook.
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
	"fmt"
	"strings"
)

const dumpTab = "   "

// dumpLine formats one line of a table dump: the tab, the description in a 40-character
// column, and the value.
func dumpLine(tab, description, value string) string {
	return fmt.Sprintf("%s %-40s %s\n", tab, description, value)
}

// ContentsString returns a human-readable report of the table: its name and dimensions,
// followed by one line per bond with the bond index, its particle indexes and its
// parameters. Rows not yet set are shown with empty brackets.
// level is accepted for compatibility, all levels currently give the full dump.
func (T *Table) ContentsString(level int) string {
	var b strings.Builder
	b.WriteString(dumpLine(dumpTab, "Bond name:", T.name))
	b.WriteString(dumpLine(dumpTab, "Number of bonds:", fmt.Sprintf("%d", T.nbonds)))
	b.WriteString(dumpLine(dumpTab, "Particles/bond:", fmt.Sprintf("%d", T.nparticles)))
	b.WriteString(dumpLine(dumpTab, "Parameters/bond:", fmt.Sprintf("%d", T.nparams)))
	b.WriteString("Bonds:\n")
	for i := 0; i < T.nbonds; i++ {
		b.WriteString(dumpLine(dumpTab, "", T.rowString(i)))
	}
	return b.String()
}

// rowString returns the description of bond i used in the dump.
func (T *Table) rowString(i int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6d [", i)
	for _, v := range row(T.ids, i, T.nparticles, T.filled[i]) {
		fmt.Fprintf(&b, "%6d ", v)
	}
	b.WriteString("] [")
	for _, v := range row(T.params, i, T.nparams, T.filled[i]) {
		fmt.Fprintf(&b, "%18.10e ", v)
	}
	b.WriteString("]")
	return b.String()
}
