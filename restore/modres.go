/*
 * modres.go, part of gocif.
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
	"github.com/golang/glog"
	cif "github.com/rmera/gocif"
)

// syncModResidues keeps only the _pdbx_struct_mod_residue rows whose
// residue still exists in the current structure. The component id is
// taken from auth_comp_id, falling back to label_comp_id when the
// author value is missing or a placeholder; the insertion code column
// is optional.
func syncModResidues(block *cif.Block, info *Info) {
	if len(info.Residues) == 0 {
		return
	}
	loop := block.FindLoop("_pdbx_struct_mod_residue.")
	if loop == nil {
		glog.V(2).Infof("no _pdbx_struct_mod_residue loop found")
		return
	}
	asym := loop.ColumnIndex("_pdbx_struct_mod_residue.auth_asym_id")
	seq := loop.ColumnIndex("_pdbx_struct_mod_residue.auth_seq_id")
	if asym < 0 || seq < 0 {
		glog.Warningf("skipping _pdbx_struct_mod_residue sync: identity columns missing")
		return
	}
	ins := loop.ColumnIndex("_pdbx_struct_mod_residue.PDB_ins_code")
	authcomp := loop.ColumnIndex("_pdbx_struct_mod_residue.auth_comp_id")
	labelcomp := loop.ColumnIndex("_pdbx_struct_mod_residue.label_comp_id")
	keepRows(loop, func(row int) bool {
		id := ResidueID{
			AuthChain: loop.Value(row, asym),
			AuthSeq:   loop.Value(row, seq),
		}
		if ins >= 0 {
			id.ICode = normValue(loop.Value(row, ins))
		}
		if authcomp >= 0 {
			id.Comp = normValue(loop.Value(row, authcomp))
		}
		if id.Comp == "" && labelcomp >= 0 {
			id.Comp = normValue(loop.Value(row, labelcomp))
		}
		return info.Residues[id]
	})
}
