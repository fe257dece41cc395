/*
 * conn.go, part of gocif.
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
	"fmt"

	"github.com/golang/glog"
	cif "github.com/rmera/gocif"
)

// partnerCols holds the column indices describing one partner atom of
// a _struct_conn row. The insertion code column is optional; -1 means
// "not in this file", which reads as an empty code.
type partnerCols struct {
	asym, seq, comp, atom, ins int
}

func findPartnerCols(loop *cif.Loop, n int) (partnerCols, error) {
	tag := func(s string) string { return fmt.Sprintf("_struct_conn.ptnr%d_%s", n, s) }
	p := partnerCols{
		asym: loop.ColumnIndex(tag("auth_asym_id")),
		seq:  loop.ColumnIndex(tag("auth_seq_id")),
		comp: loop.ColumnIndex(tag("auth_comp_id")),
		atom: loop.ColumnIndex(tag("label_atom_id")),
		ins:  loop.ColumnIndex(fmt.Sprintf("_struct_conn.pdbx_ptnr%d_PDB_ins_code", n)),
	}
	if p.asym < 0 || p.seq < 0 || p.comp < 0 || p.atom < 0 {
		return p, fmt.Errorf("partner %d identity columns missing from _struct_conn", n)
	}
	return p, nil
}

// partnerID builds the atom identity of one partner on one row.
func partnerID(loop *cif.Loop, row int, p partnerCols) AtomID {
	id := AtomID{
		AuthChain: normValue(loop.Value(row, p.asym)),
		AuthSeq:   normValue(loop.Value(row, p.seq)),
		Comp:      normValue(loop.Value(row, p.comp)),
		Name:      normValue(loop.Value(row, p.atom)),
	}
	if p.ins >= 0 {
		id.ICode = normValue(loop.Value(row, p.ins))
	}
	return id
}

// syncConnections keeps only the _struct_conn rows whose two partner
// atoms both exist in the current structure. A connection to a
// removed atom is meaningless even when the rest of its chain
// survives, so matching is by full atom identity, not by chain. If
// the loop lacks the identity columns of either partner the whole
// filter is skipped: such a table cannot be filtered meaningfully.
func syncConnections(block *cif.Block, info *Info) {
	if len(info.Atoms) == 0 {
		return
	}
	loop := block.FindLoop("_struct_conn.")
	if loop == nil {
		glog.V(2).Infof("no _struct_conn loop found")
		return
	}
	p1, err := findPartnerCols(loop, 1)
	if err != nil {
		glog.Warningf("skipping _struct_conn sync: %v", err)
		return
	}
	p2, err := findPartnerCols(loop, 2)
	if err != nil {
		glog.Warningf("skipping _struct_conn sync: %v", err)
		return
	}
	keepRows(loop, func(row int) bool {
		return info.Atoms[partnerID(loop, row, p1)] && info.Atoms[partnerID(loop, row, p2)]
	})
}
