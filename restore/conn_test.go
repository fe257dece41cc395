/*
 * conn_test.go, part of gocif.
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

var connCols = []string{
	"id",
	"ptnr1_auth_asym_id", "ptnr1_auth_seq_id", "ptnr1_auth_comp_id", "ptnr1_label_atom_id",
	"pdbx_ptnr1_PDB_ins_code",
	"ptnr2_auth_asym_id", "ptnr2_auth_seq_id", "ptnr2_auth_comp_id", "ptnr2_label_atom_id",
	"pdbx_ptnr2_PDB_ins_code",
}

func connBlock(rows [][]string) *cif.Block {
	cols := make([][]string, len(connCols))
	for c := range cols {
		for _, r := range rows {
			cols[c] = append(cols[c], r[c])
		}
	}
	b := &cif.Block{Name: "test"}
	b.SetLoop("_struct_conn.", connCols, cols)
	return b
}

func atomsInfo(atoms ...AtomID) *Info {
	info := &Info{Atoms: make(map[AtomID]bool)}
	for _, a := range atoms {
		info.Atoms[a] = true
	}
	return info
}

func TestConnBothPartnersRequired(Te *testing.T) {
	b := connBlock([][]string{
		{"c1", "A", "1", "CYS", "SG", "?", "A", "3", "CYS", "SG", "?"},
		{"c2", "A", "1", "CYS", "SG", "?", "C", "101", "HOH", "O", "?"},
		{"c3", "C", "101", "HOH", "O", "?", "A", "3", "CYS", "SG", "?"},
	})
	info := atomsInfo(
		AtomID{"A", "1", "", "CYS", "SG"},
		AtomID{"A", "3", "", "CYS", "SG"},
	)
	syncConnections(b, info)
	loop := b.FindLoop("_struct_conn.")
	assert.Equal(Te, loop.Length(), 1)
	assert.Equal(Te, loop.Value(0, 0), "c1")
}

func TestConnUnrelatedRemovalDoesNotDrop(Te *testing.T) {
	b := connBlock([][]string{
		{"c1", "A", "1", "CYS", "SG", "?", "A", "3", "CYS", "SG", "?"},
	})
	//plenty of unrelated atoms gone; both partners still here
	info := atomsInfo(
		AtomID{"A", "1", "", "CYS", "SG"},
		AtomID{"A", "3", "", "CYS", "SG"},
		AtomID{"B", "7", "", "ALA", "CA"},
	)
	syncConnections(b, info)
	assert.Equal(Te, b.FindLoop("_struct_conn.").Length(), 1)
}

func TestConnInsertionCodeSensitivity(Te *testing.T) {
	b := connBlock([][]string{
		{"c1", "A", "10", "CYS", "SG", "A", "A", "20", "CYS", "SG", "?"},
	})
	//the structure has (A,10,"",CYS), not (A,10,"A",CYS)
	info := atomsInfo(
		AtomID{"A", "10", "", "CYS", "SG"},
		AtomID{"A", "20", "", "CYS", "SG"},
	)
	syncConnections(b, info)
	assert.Equal(Te, b.FindLoop("_struct_conn.").Length(), 0)
	b2 := connBlock([][]string{
		{"c1", "A", "10", "CYS", "SG", "A", "A", "20", "CYS", "SG", "?"},
	})
	info2 := atomsInfo(
		AtomID{"A", "10", "A", "CYS", "SG"},
		AtomID{"A", "20", "", "CYS", "SG"},
	)
	syncConnections(b2, info2)
	assert.Equal(Te, b2.FindLoop("_struct_conn.").Length(), 1)
}

func TestConnMissingInsCodeColumn(Te *testing.T) {
	//no insertion code columns at all: codes read as empty
	cols := connCols[:5]
	b := &cif.Block{Name: "test"}
	b.SetLoop("_struct_conn.", append(append([]string{}, cols...),
		"ptnr2_auth_asym_id", "ptnr2_auth_seq_id", "ptnr2_auth_comp_id", "ptnr2_label_atom_id"),
		[][]string{{"c1"}, {"A"}, {"1"}, {"CYS"}, {"SG"}, {"A"}, {"3"}, {"CYS"}, {"SG"}})
	info := atomsInfo(
		AtomID{"A", "1", "", "CYS", "SG"},
		AtomID{"A", "3", "", "CYS", "SG"},
	)
	syncConnections(b, info)
	assert.Equal(Te, b.FindLoop("_struct_conn.").Length(), 1)
}

func TestConnMissingRequiredColumnSkips(Te *testing.T) {
	b := &cif.Block{Name: "test"}
	b.SetLoop("_struct_conn.", []string{"id", "conn_type_id"},
		[][]string{{"c1", "c2"}, {"disulf", "metalc"}})
	info := atomsInfo(AtomID{"A", "1", "", "CYS", "SG"})
	syncConnections(b, info)
	//table can't be filtered meaningfully, so it is left alone
	assert.Equal(Te, b.FindLoop("_struct_conn.").Length(), 2)
}

func TestConnEmptyAtomSetIsNoOp(Te *testing.T) {
	b := connBlock([][]string{
		{"c1", "A", "1", "CYS", "SG", "?", "A", "3", "CYS", "SG", "?"},
	})
	syncConnections(b, &Info{Atoms: map[AtomID]bool{}})
	assert.Equal(Te, b.FindLoop("_struct_conn.").Length(), 1)
}
