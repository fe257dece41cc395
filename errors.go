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

package cif

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from
// the error without changing its type or wrapping it around something
// else. Each call returns the decoration slice resulting from the
// current call; if passed an empty string, it just returns the
// current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with
// the caller's name before returning it. Used with any other error it
// returns the error unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// Messages for the errors this package produces.
const (
	UnableToOpen = "Unable to open file"
	NoDataBlocks = "No data blocks in document"
	NoAtomSite   = "No _atom_site loop in document"
)
