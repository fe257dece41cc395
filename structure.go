/*
 * structure.go, part of gocif.
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
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Atom is one atom of a residue, without its coordinates, which live
// in the per-model coordinate matrix.
type Atom struct {
	Name   string //label_atom_id, or auth_atom_id if the file only has that
	Symbol string
	AltID  string
	Het    bool //is this a HETATM-style record?
}

// Residue groups the atoms of one monomer/molecule. SeqNum, ICode and
// Name follow the author numbering; Subchain is the internal
// (label_asym_id) identifier and EntityID the entity the residue
// belongs to, when the file carries that information.
type Residue struct {
	SeqNum   int
	ICode    string
	Name     string
	Subchain string
	EntityID string
	Atoms    []*Atom
}

// Chain is an author-named chain and its residues, in file order.
type Chain struct {
	Name     string
	Residues []*Residue
}

// Model is one model frame of a structure. Coords has one row per
// atom, in the order the atoms appear in the chains; it is nil when
// the file carries no coordinates.
type Model struct {
	Num    int
	Chains []*Chain
	Coords *mat.Dense
}

// Structure is the full hierarchy read from an _atom_site loop.
type Structure struct {
	Models []*Model
}

// NumAtoms returns the number of atoms in the model.
func (M *Model) NumAtoms() int {
	n := 0
	for _, c := range M.Chains {
		for _, r := range c.Residues {
			n += len(r.Atoms)
		}
	}
	return n
}

// NumAtoms returns the total number of atoms over all models.
func (S *Structure) NumAtoms() int {
	n := 0
	for _, m := range S.Models {
		n += m.NumAtoms()
	}
	return n
}

// ReadStructureFile reads the named CIF file and builds the
// structural hierarchy from its first data block.
func ReadStructureFile(name string) (*Structure, error) {
	doc, err := ReadFile(name)
	if err != nil {
		return nil, errDecorate(err, "ReadStructureFile")
	}
	s, err := StructureFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("ReadStructureFile: %s: %w", name, err)
	}
	return s, nil
}

// StructureFromDocument builds a Structure from the _atom_site loop
// of the first data block of doc. Rows are grouped into models by
// pdbx_PDB_model_num (1 if absent), into chains by auth_asym_id and
// into residues by consecutive identical author numbering. Reserved
// values ("." and "?") become empty strings everywhere.
func StructureFromDocument(doc *Document) (*Structure, error) {
	block := doc.FirstBlock()
	if block == nil {
		return nil, CError{NoDataBlocks, []string{"StructureFromDocument"}}
	}
	loop := block.FindLoop("_atom_site.")
	if loop == nil {
		return nil, CError{NoAtomSite, []string{"StructureFromDocument"}}
	}
	idx := func(tag string) int { return loop.ColumnIndex("_atom_site." + tag) }
	cols := struct {
		group, id, symbol, labelAtom, authAtom, alt int
		labelComp, authComp, labelAsym, authAsym    int
		entity, authSeq, ins, x, y, z, modelNum     int
	}{
		group:     idx("group_PDB"),
		id:        idx("id"),
		symbol:    idx("type_symbol"),
		labelAtom: idx("label_atom_id"),
		authAtom:  idx("auth_atom_id"),
		alt:       idx("label_alt_id"),
		labelComp: idx("label_comp_id"),
		authComp:  idx("auth_comp_id"),
		labelAsym: idx("label_asym_id"),
		authAsym:  idx("auth_asym_id"),
		entity:    idx("label_entity_id"),
		authSeq:   idx("auth_seq_id"),
		ins:       idx("pdbx_PDB_ins_code"),
		x:         idx("Cartn_x"),
		y:         idx("Cartn_y"),
		z:         idx("Cartn_z"),
		modelNum:  idx("pdbx_PDB_model_num"),
	}
	cell := func(row, col int) string {
		if col < 0 {
			return ""
		}
		v := loop.Value(row, col)
		if IsPlaceholder(v) {
			return ""
		}
		return v
	}
	s := new(Structure)
	models := make(map[int]*Model)
	chains := make(map[*Model]map[string]*Chain)
	coords := make(map[*Model][]float64)
	havecoords := cols.x >= 0 && cols.y >= 0 && cols.z >= 0
	for row := 0; row < loop.Length(); row++ {
		modnum := 1
		if v := cell(row, cols.modelNum); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("StructureFromDocument: couldn't parse model number from %s: %w", v, err)
			}
			modnum = n
		}
		model := models[modnum]
		if model == nil {
			model = &Model{Num: modnum}
			models[modnum] = model
			chains[model] = make(map[string]*Chain)
			s.Models = append(s.Models, model)
		}
		cname := cell(row, cols.authAsym)
		if cname == "" {
			cname = cell(row, cols.labelAsym)
		}
		chain := chains[model][cname]
		if chain == nil {
			chain = &Chain{Name: cname}
			chains[model][cname] = chain
			model.Chains = append(model.Chains, chain)
		}
		seq := 0
		if v := cell(row, cols.authSeq); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("StructureFromDocument: couldn't parse auth_seq_id from %s: %w", v, err)
			}
			seq = n
		}
		icode := cell(row, cols.ins)
		comp := cell(row, cols.authComp)
		if comp == "" {
			comp = cell(row, cols.labelComp)
		}
		subchain := cell(row, cols.labelAsym)
		var res *Residue
		if n := len(chain.Residues); n > 0 {
			last := chain.Residues[n-1]
			if last.SeqNum == seq && last.ICode == icode && last.Name == comp && last.Subchain == subchain {
				res = last
			}
		}
		if res == nil {
			res = &Residue{
				SeqNum:   seq,
				ICode:    icode,
				Name:     comp,
				Subchain: subchain,
				EntityID: cell(row, cols.entity),
			}
			chain.Residues = append(chain.Residues, res)
		}
		at := new(Atom)
		at.Name = cell(row, cols.labelAtom)
		if at.Name == "" {
			at.Name = cell(row, cols.authAtom)
		}
		at.Symbol = cell(row, cols.symbol)
		at.AltID = cell(row, cols.alt)
		at.Het = cell(row, cols.group) != "ATOM"
		res.Atoms = append(res.Atoms, at)
		if havecoords {
			var xyz [3]float64
			for i, col := range []int{cols.x, cols.y, cols.z} {
				fl, err := strconv.ParseFloat(loop.Value(row, col), 64)
				if err != nil {
					return nil, fmt.Errorf("StructureFromDocument: couldn't parse the %d th coordinate from %s: %w", i, loop.Value(row, col), err)
				}
				xyz[i] = fl
			}
			coords[model] = append(coords[model], xyz[0], xyz[1], xyz[2])
		}
	}
	for _, m := range s.Models {
		if c := coords[m]; len(c) > 0 {
			m.Coords = mat.NewDense(len(c)/3, 3, c)
		}
	}
	return s, nil
}
