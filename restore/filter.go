/*
 * filter.go, part of gocif.
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

// keepRowsByColumn keeps only the rows of the category's loop whose
// value in the given column (the tag without the category prefix) is
// in keep. Row and column order are preserved. An empty keep set, a
// missing loop and a missing column are all no-ops: many categories
// and columns are simply absent in any given file.
func keepRowsByColumn(block *cif.Block, prefix, column string, keep map[string]bool) {
	if len(keep) == 0 {
		return
	}
	loop := block.FindLoop(prefix)
	if loop == nil {
		glog.V(2).Infof("no loop found for category %s", prefix)
		return
	}
	idx := loop.ColumnIndex(prefix + column)
	if idx < 0 {
		glog.V(2).Infof("column %s not found in category %s", column, prefix)
		return
	}
	keepRows(loop, func(row int) bool {
		return keep[loop.Value(row, idx)]
	})
}

// keepRows rebuilds every column of the loop retaining only the rows
// the predicate accepts, in their original order.
func keepRows(loop *cif.Loop, pred func(row int) bool) {
	width := loop.Width()
	newcols := make([][]string, width)
	for i := range newcols {
		newcols[i] = make([]string, 0, loop.Length())
	}
	for row := 0; row < loop.Length(); row++ {
		if !pred(row) {
			continue
		}
		for col := 0; col < width; col++ {
			newcols[col] = append(newcols[col], loop.Value(row, col))
		}
	}
	loop.SetAllValues(newcols)
}
