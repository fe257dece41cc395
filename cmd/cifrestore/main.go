/*
 * main.go, part of gocif.
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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"

	"github.com/rmera/gocif/restore"
)

const cifrestoreVersion = "0.1.0"

func main() {
	usage := `Restore mmCIF categories from a reference CIF into an edited structure.

Takes a CIF file that has been edited (e.g. waters or ligands removed in
ChimeraX or PyMOL) and restores the requested categories from the original
reference CIF, synchronized to the structure the edited file still contains.
The reference may be gzip- or zstd-compressed.

Usage:
    cifrestore <edited> <reference> -o <output> -c <categories>

Options:
    -h --help                   Show this screen.
    --version                   Show the version.
    -o --output=<output>        Output CIF file path.
    -c --categories=<list>      Comma-separated category prefixes to restore,
                                e.g. "_entity.,_struct_asym.,_struct_conn."`

	defer glog.Flush()
	opts, err := docopt.ParseArgs(usage, os.Args[1:], cifrestoreVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cifrestore: %v\n", err)
		os.Exit(1)
	}
	edited, _ := opts.String("<edited>")
	reference, _ := opts.String("<reference>")
	output, _ := opts.String("--output")
	catlist, _ := opts.String("--categories")

	var categories []string
	for _, c := range strings.Split(catlist, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		fmt.Fprintln(os.Stderr, "cifrestore: at least one category must be given")
		os.Exit(1)
	}
	glog.Infof("edited: %s", edited)
	glog.Infof("reference: %s", reference)
	glog.Infof("categories: %s", strings.Join(categories, ", "))

	doc, err := restore.Categories(edited, reference, categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cifrestore: %v\n", err)
		os.Exit(1)
	}
	if err := doc.WriteFile(output); err != nil {
		fmt.Fprintf(os.Stderr, "cifrestore: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("written to %s\n", output)
}
