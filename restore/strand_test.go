/*
 * strand_test.go, part of gocif.
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

func TestFilterStrandList(Te *testing.T) {
	keep := map[string]bool{"A": true, "C": true}
	assert.Equal(Te, filterStrandList("A,B,C", keep), "A,C")
	assert.Equal(Te, filterStrandList("A, B, C", keep), "A,C")
	assert.Equal(Te, filterStrandList("B", map[string]bool{"A": true}), ".")
	assert.Equal(Te, filterStrandList("A,C", keep), "A,C")
	assert.Equal(Te, filterStrandList(".", keep), ".")
}

func TestRewriteStrandIDs(Te *testing.T) {
	b := &cif.Block{Name: "test"}
	b.SetLoop("_entity_poly.", []string{"entity_id", "pdbx_strand_id"},
		[][]string{{"1", "2"}, {"A,B,C", "A"}})
	info := &Info{AuthChainIDs: map[string]bool{"A": true, "C": true}}
	rewriteStrandIDs(b, info)
	loop := b.FindLoop("_entity_poly.")
	assert.Equal(Te, loop.Value(0, 1), "A,C")
	//the already-valid row stays byte-identical
	assert.Equal(Te, loop.Value(1, 1), "A")
	//row membership is untouched; only the field content changes
	assert.Equal(Te, loop.Length(), 2)
}

func TestRewriteStrandIDsToPlaceholder(Te *testing.T) {
	b := &cif.Block{Name: "test"}
	b.SetLoop("_entity_poly.", []string{"entity_id", "pdbx_strand_id"},
		[][]string{{"1"}, {"X,Y"}})
	info := &Info{AuthChainIDs: map[string]bool{"A": true}}
	rewriteStrandIDs(b, info)
	assert.Equal(Te, b.FindLoop("_entity_poly.").Value(0, 1), ".")
}

func TestRewriteStrandIDsMissingColumn(Te *testing.T) {
	b := &cif.Block{Name: "test"}
	b.SetLoop("_entity_poly.", []string{"entity_id"}, [][]string{{"1"}})
	rewriteStrandIDs(b, &Info{AuthChainIDs: map[string]bool{"A": true}})
	assert.Equal(Te, b.FindLoop("_entity_poly.").Length(), 1)
}
