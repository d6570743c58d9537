/*
 * doc.go, part of brook.
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

/*
Package brook is the root of a small set of packages that prepare bonded
force-field terms for a streaming force pipeline.

	**Packages**

    bondparams: fixed-shape tables holding, for each bond of a force-field term,
	the indices of the particles in the bond and the parameters of its potential.
	Tables are filled once during setup and read afterwards.

    grotop: reads the bonded sections of Gromacs topologies (bonds, angles,
	dihedrals, constraints), possibly gzip- or zstd-compressed, and loads them
	into bondparams tables, one per kind of term.

    stream: flattens tables into padded float32 streams, gonum matrices,
	per-parameter statistics and histogram plots.

    config: YAML configuration for the bondtab command.

The bondtab command (cmd/bondtab) puts everything together.
*/
package brook
