/*
 * strand.go, part of gocif.
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
	"strings"

	cif "github.com/rmera/gocif"
)

// rewriteStrandIDs filters the comma-separated author-chain lists in
// _entity_poly.pdbx_strand_id, dropping chains no longer in the
// structure. Unlike the row filters, this edits the content of one
// field; a row is rewritten only when its value actually changes, and
// a list left with no members becomes the inapplicable marker.
func rewriteStrandIDs(block *cif.Block, info *Info) {
	loop := block.FindLoop("_entity_poly.")
	if loop == nil {
		return
	}
	col := loop.ColumnIndex("_entity_poly.pdbx_strand_id")
	if col < 0 {
		return
	}
	for row := 0; row < loop.Length(); row++ {
		old := loop.Value(row, col)
		rewritten := filterStrandList(old, info.AuthChainIDs)
		if rewritten != old {
			loop.SetValue(row, col, rewritten)
		}
	}
}

func filterStrandList(list string, keep map[string]bool) string {
	var kept []string
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if keep[s] {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return cif.Inapplicable
	}
	return strings.Join(kept, ",")
}
