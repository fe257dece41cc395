/*
 * errors.go, part of gocif.
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
	"fmt"
)

// Error is the general structure for restoration errors. It fulfills
// cif.Error. All errors this package produces are preconditions of
// the whole operation and thus critical; per-category problems are
// logged and skipped instead.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("restore: file %s: %s", err.filename, err.message)
}

func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Critical() bool { return err.critical }

// Messages for the precondition failures of the restore operation.
const (
	RefUnreadable    = "couldn't read the reference document"
	RefNoBlocks      = "no data blocks in the reference document"
	EditedUnreadable = "couldn't read a structure from the edited document"
	EditedNoAtoms    = "the edited structure contains no atoms"
	EditedNoBlocks   = "no data blocks in the edited document"
)
