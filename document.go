/*
 * document.go, part of gocif.
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
)

// CIF reserved values for "inapplicable" and "unknown" fields.
const (
	Inapplicable = "."
	Unknown      = "?"
)

// IsPlaceholder returns whether s is one of the CIF reserved values
// that mean "no value here".
func IsPlaceholder(s string) bool {
	return s == Inapplicable || s == Unknown
}

// Document is an in-memory CIF file: an ordered list of data blocks.
type Document struct {
	Blocks []*Block
}

// FirstBlock returns the first data block of the document, or nil if
// the document has none.
func (D *Document) FirstBlock() *Block {
	if D == nil || len(D.Blocks) == 0 {
		return nil
	}
	return D.Blocks[0]
}

// Block is one data_ block: a name and an ordered list of items, each
// of which is either a tag/value pair or a loop.
type Block struct {
	Name  string
	Items []*Item
}

// Item holds either a Pair or a Loop, never both.
type Item struct {
	Pair *Pair
	Loop *Loop
}

// Pair is a single non-looped tag and its value.
type Pair struct {
	Tag   string
	Value string
}

// Loop is a looped category: a list of tags and the values for all
// rows, stored row-major (the value for row r, column c sits at
// r*Width()+c). All rows have exactly one value per tag.
type Loop struct {
	Tags   []string
	Values []string
}

// Width returns the number of columns (tags) in the loop.
func (L *Loop) Width() int {
	return len(L.Tags)
}

// Length returns the number of rows in the loop.
func (L *Loop) Length() int {
	if L.Width() == 0 {
		return 0
	}
	return len(L.Values) / L.Width()
}

// Value returns the value at the given row and column. Panics if out
// of range, as this always means the caller is wrong.
func (L *Loop) Value(row, col int) string {
	if row < 0 || col < 0 || col >= L.Width() || row >= L.Length() {
		panic("Loop: requested value out of bounds")
	}
	return L.Values[row*L.Width()+col]
}

// SetValue replaces the value at the given row and column. Panics if
// out of range.
func (L *Loop) SetValue(row, col int, v string) {
	if row < 0 || col < 0 || col >= L.Width() || row >= L.Length() {
		panic("Loop: tried to set value out of bounds")
	}
	L.Values[row*L.Width()+col] = v
}

// ColumnIndex returns the index of the column with the given tag, or
// -1 if the loop has no such tag. Tag matching is case-insensitive,
// as CIF tags are.
func (L *Loop) ColumnIndex(tag string) int {
	for i, t := range L.Tags {
		if strings.EqualFold(t, tag) {
			return i
		}
	}
	return -1
}

// Column returns a copy of all values in the column with the given
// tag, or nil if the loop has no such tag.
func (L *Loop) Column(tag string) []string {
	idx := L.ColumnIndex(tag)
	if idx < 0 {
		return nil
	}
	col := make([]string, 0, L.Length())
	for i := 0; i < L.Length(); i++ {
		col = append(col, L.Value(i, idx))
	}
	return col
}

// SetAllValues replaces the contents of the loop with the given
// per-column value slices. All columns must have the same length and
// there must be one column per tag. Panics otherwise: mismatched
// columns mean the program is wrong and should not go on.
func (L *Loop) SetAllValues(columns [][]string) {
	if len(columns) != L.Width() {
		panic("Loop: number of columns given doesn't match the loop tags")
	}
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	for _, c := range columns {
		if len(c) != rows {
			panic("Loop: columns of unequal length")
		}
	}
	vals := make([]string, 0, rows*L.Width())
	for r := 0; r < rows; r++ {
		for c := range columns {
			vals = append(vals, columns[c][r])
		}
	}
	L.Values = vals
}

// FindLoop returns the first loop in the block whose first tag starts
// with the given category prefix (e.g. "_entity."), or nil if there
// is none. Matching is case-insensitive.
func (B *Block) FindLoop(prefix string) *Loop {
	lp := strings.ToLower(prefix)
	for _, item := range B.Items {
		if item.Loop == nil || len(item.Loop.Tags) == 0 {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item.Loop.Tags[0]), lp) {
			return item.Loop
		}
	}
	return nil
}

// FindPair returns the value of the pair with the given tag and true,
// or "" and false if the block has no such pair.
func (B *Block) FindPair(tag string) (string, bool) {
	for _, item := range B.Items {
		if item.Pair != nil && strings.EqualFold(item.Pair.Tag, tag) {
			return item.Pair.Value, true
		}
	}
	return "", false
}

// SetLoop creates a loop for the given category prefix with the given
// column names (without the prefix) and per-column values, replacing
// every item already present for that category: a previous loop, but
// also tag/value pairs, as minimal writers emit single-row categories
// in pair form and a tag may never appear twice in a block. The new
// loop takes the place of the first replaced item, or goes at the end
// of the block if the category was not present. The new loop is
// returned.
func (B *Block) SetLoop(prefix string, names []string, columns [][]string) *Loop {
	tags := make([]string, len(names))
	for i, n := range names {
		tags[i] = prefix + n
	}
	loop := &Loop{Tags: tags}
	loop.SetAllValues(columns)
	lp := strings.ToLower(prefix)
	sameCategory := func(item *Item) bool {
		if item.Loop != nil && len(item.Loop.Tags) > 0 {
			return strings.HasPrefix(strings.ToLower(item.Loop.Tags[0]), lp)
		}
		if item.Pair != nil {
			return strings.HasPrefix(strings.ToLower(item.Pair.Tag), lp)
		}
		return false
	}
	var kept []*Item
	placed := false
	for _, item := range B.Items {
		if !sameCategory(item) {
			kept = append(kept, item)
			continue
		}
		if !placed {
			kept = append(kept, &Item{Loop: loop})
			placed = true
		}
	}
	if !placed {
		kept = append(kept, &Item{Loop: loop})
	}
	B.Items = kept
	return loop
}
