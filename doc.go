/*
 * doc.go, part of gocif.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * goCIF is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

/*Package cif reads and writes CIF/mmCIF (PDBx) files as documents of
data blocks, tag/value pairs and loops, and builds a structural
hierarchy (models, chains, residues, atoms) from the _atom_site loop.


	**goCIF capabilities**

    Reads and writes CIF documents, keeping block, loop and row order.

    Handles quoted values, semicolon text fields and comments.

    Reads gzip- and zstd-compressed files transparently.

    Looks up and replaces whole categories (loops) by prefix.

    Builds a Structure hierarchy from _atom_site, with per-model
	coordinate matrices.

The restore subpackage uses these facilities to copy categories from a
reference file into an edited one and keep them consistent with the
edited structure.*/
package cif
