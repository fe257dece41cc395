/*
 * restore.go, part of gocif.
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

	"github.com/golang/glog"
	cif "github.com/rmera/gocif"
)

// categoryKind enumerates the synchronization rules a restored
// category can need. Every restorable category maps to exactly one
// kind; a prefix this package doesn't know gets kindPlain, meaning
// "restore verbatim, filter nothing".
type categoryKind int

const (
	kindPlain categoryKind = iota
	kindEntity
	kindEntityPoly
	kindEntityPolySeq
	kindEntityNonPoly
	kindChain
	kindScheme
	kindConn
	kindModRes
	kindRefineHist
)

func kindOf(prefix string) categoryKind {
	switch strings.ToLower(prefix) {
	case "_entity.":
		return kindEntity
	case "_entity_poly.":
		return kindEntityPoly
	case "_entity_poly_seq.":
		return kindEntityPolySeq
	case "_pdbx_entity_nonpoly.":
		return kindEntityNonPoly
	case "_struct_asym.":
		return kindChain
	case "_pdbx_poly_seq_scheme.", "_pdbx_nonpoly_scheme.", "_pdbx_branch_scheme.":
		return kindScheme
	case "_struct_conn.":
		return kindConn
	case "_pdbx_struct_mod_residue.":
		return kindModRes
	case "_refine_hist.":
		return kindRefineHist
	}
	return kindPlain
}

// Categories restores the given categories from the reference CIF
// into the edited CIF and synchronizes each restored loop with the
// structure the edited file actually contains. It returns a new
// in-memory document ready to be written; the input files are not
// touched.
//
// Prefixes are normalized to end with the category delimiter, so
// "_entity" and "_entity." are the same request. Categories absent
// from the reference, and restored loops lacking the columns a filter
// needs, are skipped with a log message; unreadable inputs, inputs
// without data blocks and an edited structure with no atoms abort the
// whole operation.
func Categories(editedPath, referencePath string, prefixes []string) (*cif.Document, error) {
	refdoc, err := cif.ReadFile(referencePath)
	if err != nil {
		return nil, Error{RefUnreadable, referencePath, []string{"Categories"}, true}
	}
	refblock := refdoc.FirstBlock()
	if refblock == nil {
		return nil, Error{RefNoBlocks, referencePath, []string{"Categories"}, true}
	}
	doc, err := cif.ReadFile(editedPath)
	if err != nil {
		return nil, Error{EditedUnreadable, editedPath, []string{"Categories"}, true}
	}
	block := doc.FirstBlock()
	if block == nil {
		return nil, Error{EditedNoBlocks, editedPath, []string{"Categories"}, true}
	}
	structure, err := cif.StructureFromDocument(doc)
	if err != nil {
		return nil, Error{EditedUnreadable, editedPath, []string{"Categories"}, true}
	}
	if structure.NumAtoms() == 0 {
		return nil, Error{EditedNoAtoms, editedPath, []string{"Categories"}, true}
	}
	info := NewInfoWithReference(structure, refblock)
	for _, prefix := range prefixes {
		if !strings.HasSuffix(prefix, ".") {
			prefix = prefix + "."
		}
		if !restoreCategory(refblock, block, prefix) {
			continue
		}
		syncCategory(block, prefix, info, structure)
	}
	return doc, nil
}

// restoreCategory copies the reference loop for the category into the
// target block verbatim, creating or replacing the target loop. It
// reports whether anything was restored; a category the reference
// doesn't have is skipped, not an error.
func restoreCategory(src, dst *cif.Block, prefix string) bool {
	loop := src.FindLoop(prefix)
	if loop == nil {
		glog.Warningf("category %s not found in reference, skipped", prefix)
		return false
	}
	names := make([]string, loop.Width())
	for i, tag := range loop.Tags {
		names[i] = strings.TrimPrefix(tag, prefix)
	}
	columns := make([][]string, loop.Width())
	for c := range columns {
		col := make([]string, loop.Length())
		for r := 0; r < loop.Length(); r++ {
			col[r] = loop.Value(r, c)
		}
		columns[c] = col
	}
	dst.SetLoop(prefix, names, columns)
	return true
}

// syncCategory applies the filtering rule for the restored category.
// Restoring happens first and filtering strictly after, so the two
// stay independently testable.
func syncCategory(block *cif.Block, prefix string, info *Info, s *cif.Structure) {
	switch kindOf(prefix) {
	case kindEntity:
		keepRowsByColumn(block, prefix, "id", info.EntityIDs)
	case kindEntityPoly:
		keepRowsByColumn(block, prefix, "entity_id", info.EntityIDs)
		rewriteStrandIDs(block, info)
	case kindEntityPolySeq:
		keepRowsByColumn(block, prefix, "entity_id", info.EntityIDs)
	case kindEntityNonPoly:
		keepRowsByColumn(block, prefix, "entity_id", info.EntityIDs)
	case kindChain:
		keepRowsByColumn(block, prefix, "id", info.ChainIDs)
	case kindScheme:
		keepRowsByColumn(block, prefix, "asym_id", info.ChainIDs)
	case kindConn:
		syncConnections(block, info)
	case kindModRes:
		syncModResidues(block, info)
	case kindRefineHist:
		updateRefineHist(block, s)
	case kindPlain:
		glog.V(2).Infof("category %s restored without synchronization", prefix)
	}
}
