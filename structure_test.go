/*
 * structure_test.go, part of gocif.
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

package cif

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestReadStructureFile(Te *testing.T) {
	s, err := ReadStructureFile("test/edited.cif")
	if err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, len(s.Models), 1)
	model := s.Models[0]
	assert.Equal(Te, len(model.Chains), 2)
	assert.Equal(Te, model.Chains[0].Name, "A")
	assert.Equal(Te, model.Chains[1].Name, "B")
	assert.Equal(Te, len(model.Chains[0].Residues), 3)
	assert.Equal(Te, len(model.Chains[1].Residues), 2)
	assert.Equal(Te, s.NumAtoms(), 17)
	cys := model.Chains[0].Residues[2]
	assert.Equal(Te, cys.Name, "CYS")
	assert.Equal(Te, cys.SeqNum, 3)
	assert.Equal(Te, cys.ICode, "")
	assert.Equal(Te, cys.Subchain, "A")
	assert.Equal(Te, len(cys.Atoms), 4)
	assert.Equal(Te, cys.Atoms[3].Name, "SG")
	r, c := model.Coords.Dims()
	assert.Equal(Te, r, 17)
	assert.Equal(Te, c, 3)
}

func TestStructureGrouping(Te *testing.T) {
	in := `data_T
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.auth_seq_id
_atom_site.pdbx_PDB_ins_code
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
ATOM 1 N  GLY A 10 ? A 1
ATOM 2 CA GLY A 10 ? A 1
ATOM 3 N  GLY A 10 A A 1
HETATM 4 O HOH B 101 ? A 1
ATOM 5 N  GLY A 10 ? A 2
`
	doc, err := Read(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	s, err := StructureFromDocument(doc)
	if err != nil {
		Te.Fatal(err)
	}
	//the insertion-coded GLY 10 A is a different residue from GLY 10
	assert.Equal(Te, len(s.Models), 2)
	chain := s.Models[0].Chains[0]
	assert.Equal(Te, len(chain.Residues), 3)
	assert.Equal(Te, chain.Residues[0].SeqNum, 10)
	assert.Equal(Te, chain.Residues[1].ICode, "A")
	assert.Equal(Te, chain.Residues[2].Subchain, "B")
	assert.Equal(Te, chain.Residues[2].Atoms[0].Het, true)
	//no coordinate columns in this file
	if s.Models[0].Coords != nil {
		Te.Error("expected nil Coords without Cartn columns")
	}
	assert.Equal(Te, s.NumAtoms(), 5)
}

func TestStructureNoAtomSite(Te *testing.T) {
	doc, err := Read(strings.NewReader("data_T\n_struct.title  x\n"))
	if err != nil {
		Te.Fatal(err)
	}
	_, err = StructureFromDocument(doc)
	if err == nil {
		Te.Error("expected an error for a document without _atom_site")
	}
}
