/*
 * write.go, part of gocif.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteFile writes the document to the named file, overwriting it if
// it exists.
func (D *Document) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer f.Close()
	return D.Write(f)
}

// Write writes the document as CIF text. Block and item order is
// preserved; values are re-quoted as needed.
func (D *Document) Write(out io.Writer) error {
	w := bufio.NewWriter(out)
	for _, b := range D.Blocks {
		fmt.Fprintf(w, "data_%s\n#\n", b.Name)
		for _, item := range b.Items {
			if item.Pair != nil {
				writePair(w, item.Pair)
			} else if item.Loop != nil {
				writeLoop(w, item.Loop)
			}
			w.WriteString("#\n")
		}
	}
	return w.Flush()
}

func writePair(w *bufio.Writer, p *Pair) {
	if needsTextField(p.Value) {
		fmt.Fprintf(w, "%s\n;%s\n;\n", p.Tag, p.Value)
		return
	}
	fmt.Fprintf(w, "%-33s %s\n", p.Tag, formatValue(p.Value))
}

func writeLoop(w *bufio.Writer, l *Loop) {
	w.WriteString("loop_\n")
	for _, t := range l.Tags {
		w.WriteString(t)
		w.WriteByte('\n')
	}
	width := l.Width()
	for r := 0; r < l.Length(); r++ {
		for c := 0; c < width; c++ {
			v := l.Value(r, c)
			if needsTextField(v) {
				// A text field takes over the line; the row continues
				// after the closing semicolon.
				if c > 0 {
					w.WriteByte('\n')
				}
				fmt.Fprintf(w, ";%s\n;\n", v)
				continue
			}
			if c > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(formatValue(v))
		}
		w.WriteByte('\n')
	}
}

// needsTextField reports values that can only be written as a
// semicolon-delimited text field.
func needsTextField(s string) bool {
	return strings.Contains(s, "\n") ||
		(strings.Contains(s, "'") && strings.Contains(s, `"`))
}

// formatValue quotes s the minimal way that reads back as the same
// value. The empty string stands for "no value" and is written as the
// inapplicable marker.
func formatValue(s string) string {
	if s == "" {
		return Inapplicable
	}
	if !needsQuoting(s) {
		return s
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func needsQuoting(s string) bool {
	if strings.ContainsAny(s, " \t'\"") {
		return true
	}
	switch s[0] {
	case '_', '#', '$', '[', ']', ';':
		return true
	}
	low := strings.ToLower(s)
	if low == "loop_" || low == "stop_" || low == "global_" ||
		strings.HasPrefix(low, "data_") || strings.HasPrefix(low, "save_") {
		return true
	}
	return false
}
