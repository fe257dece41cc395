/*
 * modres_test.go, part of gocif.
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
	"testing"

	"github.com/go-playground/assert/v2"
	cif "github.com/rmera/gocif"
)

func modresBlock(cols []string, columns [][]string) *cif.Block {
	b := &cif.Block{Name: "test"}
	b.SetLoop("_pdbx_struct_mod_residue.", cols, columns)
	return b
}

func residuesInfo(residues ...ResidueID) *Info {
	info := &Info{Residues: make(map[ResidueID]bool)}
	for _, r := range residues {
		info.Residues[r] = true
	}
	return info
}

func TestModResFilter(Te *testing.T) {
	b := modresBlock(
		[]string{"id", "auth_asym_id", "auth_seq_id", "PDB_ins_code", "auth_comp_id"},
		[][]string{{"1", "2"}, {"A", "C"}, {"3", "101"}, {"?", "?"}, {"CYS", "HOH"}})
	info := residuesInfo(ResidueID{"A", "3", "", "CYS"})
	syncModResidues(b, info)
	loop := b.FindLoop("_pdbx_struct_mod_residue.")
	assert.Equal(Te, loop.Length(), 1)
	assert.Equal(Te, loop.Value(0, 0), "1")
}

func TestModResCompIDFallback(Te *testing.T) {
	//auth_comp_id is a placeholder; label_comp_id must take over
	b := modresBlock(
		[]string{"id", "auth_asym_id", "auth_seq_id", "auth_comp_id", "label_comp_id"},
		[][]string{{"1"}, {"A"}, {"3"}, {"."}, {"CYS"}})
	info := residuesInfo(ResidueID{"A", "3", "", "CYS"})
	syncModResidues(b, info)
	assert.Equal(Te, b.FindLoop("_pdbx_struct_mod_residue.").Length(), 1)
}

func TestModResInsertionCodeSensitivity(Te *testing.T) {
	b := modresBlock(
		[]string{"id", "auth_asym_id", "auth_seq_id", "PDB_ins_code", "auth_comp_id"},
		[][]string{{"1"}, {"A"}, {"10"}, {"A"}, {"CYS"}})
	info := residuesInfo(ResidueID{"A", "10", "", "CYS"})
	syncModResidues(b, info)
	assert.Equal(Te, b.FindLoop("_pdbx_struct_mod_residue.").Length(), 0)
}

func TestModResMissingRequiredColumnSkips(Te *testing.T) {
	b := modresBlock([]string{"id", "details"},
		[][]string{{"1"}, {"no identity here"}})
	info := residuesInfo(ResidueID{"A", "3", "", "CYS"})
	syncModResidues(b, info)
	assert.Equal(Te, b.FindLoop("_pdbx_struct_mod_residue.").Length(), 1)
}

func TestModResEmptyResidueSetIsNoOp(Te *testing.T) {
	b := modresBlock(
		[]string{"id", "auth_asym_id", "auth_seq_id", "auth_comp_id"},
		[][]string{{"1"}, {"A"}, {"3"}, {"CYS"}})
	syncModResidues(b, &Info{Residues: map[ResidueID]bool{}})
	assert.Equal(Te, b.FindLoop("_pdbx_struct_mod_residue.").Length(), 1)
}
