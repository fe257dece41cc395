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

/*Package restore copies selected mmCIF categories from a full reference
file into an edited derivative of it, and filters the copied rows so
they stay consistent with the structure the edited file still contains.

Structure editors (ChimeraX, PyMOL, gemmi and friends) tend to write
minimal files: waters or ligands are gone, and with them most of the
metadata categories of the original deposition. This package puts the
metadata back. Given the edited file, the original reference file and a
list of category prefixes, Categories copies each requested loop from
the reference and then drops the rows that refer to entities, chains,
residues or atoms no longer present:

	doc, err := restore.Categories("edited.cif", "original.cif.gz",
		[]string{"_entity.", "_struct_asym.", "_struct_conn."})
	if err != nil {
		...
	}
	err = doc.WriteFile("restored.cif")

Each category family has its own matching rule: entity tables go by
entity id, chain and scheme tables by internal chain id, connection
records by the full identity of both partner atoms, modified-residue
records by residue identity, and the strand lists of _entity_poly are
rewritten in place. Categories the package doesn't know are restored
verbatim; picking categories that are safe to restore unfiltered is the
caller's responsibility.

The whole pass is a single-threaded, deterministic transformation; the
returned document shares nothing with other invocations.*/
package restore
