/*
 * stats.go, part of gocif.
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

package restore

import (
	"strconv"

	cif "github.com/rmera/gocif"
)

// updateRefineHist rewrites the total atom count of a restored
// _refine_hist loop to match the edited structure. Counts copied from
// the reference describe the structure before editing, so they are
// stale by construction.
func updateRefineHist(block *cif.Block, s *cif.Structure) {
	loop := block.FindLoop("_refine_hist.")
	if loop == nil {
		return
	}
	col := loop.ColumnIndex("_refine_hist.number_atoms_total")
	if col < 0 {
		return
	}
	natoms := strconv.Itoa(s.NumAtoms())
	for row := 0; row < loop.Length(); row++ {
		loop.SetValue(row, col, natoms)
	}
}
