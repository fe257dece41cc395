/*
 * info.go, part of gocif.
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

// AtomID identifies one atom of the structure by its author chain,
// author sequence number, insertion code, component name and atom
// name. An absent insertion code is the empty string.
type AtomID struct {
	AuthChain string
	AuthSeq   string
	ICode     string
	Comp      string
	Name      string
}

// ResidueID identifies one residue the same way, without the atom
// name.
type ResidueID struct {
	AuthChain string
	AuthSeq   string
	ICode     string
	Comp      string
}

// Info holds the identity sets of the current structure: which
// entities, chains and author chains survive, and the full composite
// identities of every residue and atom. It is computed once per
// restoration pass and never changed afterwards.
type Info struct {
	EntityIDs    map[string]bool
	ChainIDs     map[string]bool
	AuthChainIDs map[string]bool
	Residues     map[ResidueID]bool
	Atoms        map[AtomID]bool
}

// NewInfo extracts the identity sets by scanning every residue of
// every model of s. Entity membership comes from the entity ids the
// structure itself carries; files without that information should use
// NewInfoWithReference instead. An empty structure yields empty sets.
func NewInfo(s *cif.Structure) *Info {
	info := scan(s)
	for _, m := range s.Models {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				if r.Subchain != "" && r.EntityID != "" {
					info.EntityIDs[r.EntityID] = true
				}
			}
		}
	}
	return info
}

// NewInfoWithReference extracts the identity sets of s, taking the
// subchain-to-entity mapping from the _struct_asym loop of the
// reference block. This is what minimal edited exports need, as they
// usually carry no entity metadata of their own.
func NewInfoWithReference(s *cif.Structure, ref *cif.Block) *Info {
	info := scan(s)
	chain2entity := make(map[string]string)
	if loop := ref.FindLoop("_struct_asym."); loop != nil {
		id := loop.ColumnIndex("_struct_asym.id")
		ent := loop.ColumnIndex("_struct_asym.entity_id")
		if id >= 0 && ent >= 0 {
			for i := 0; i < loop.Length(); i++ {
				chain2entity[loop.Value(i, id)] = loop.Value(i, ent)
			}
		}
	}
	for chain := range info.ChainIDs {
		if ent := chain2entity[chain]; ent != "" {
			info.EntityIDs[ent] = true
		}
	}
	return info
}

// scan fills every identity set that can be derived from the
// structure alone.
func scan(s *cif.Structure) *Info {
	info := &Info{
		EntityIDs:    make(map[string]bool),
		ChainIDs:     make(map[string]bool),
		AuthChainIDs: make(map[string]bool),
		Residues:     make(map[ResidueID]bool),
		Atoms:        make(map[AtomID]bool),
	}
	for _, m := range s.Models {
		for _, c := range m.Chains {
			hasresidues := false
			for _, r := range c.Residues {
				if r.Subchain != "" {
					info.ChainIDs[r.Subchain] = true
					hasresidues = true
				}
				rid := ResidueID{
					AuthChain: c.Name,
					AuthSeq:   strconv.Itoa(r.SeqNum),
					ICode:     r.ICode,
					Comp:      r.Name,
				}
				info.Residues[rid] = true
				for _, a := range r.Atoms {
					info.Atoms[AtomID{rid.AuthChain, rid.AuthSeq, rid.ICode, rid.Comp, a.Name}] = true
				}
			}
			if hasresidues {
				info.AuthChainIDs[c.Name] = true
			}
		}
	}
	return info
}

// normValue collapses the CIF reserved values to the empty string, as
// identity keys treat "no insertion code" and "." the same.
func normValue(s string) string {
	if cif.IsPlaceholder(s) {
		return ""
	}
	return s
}
