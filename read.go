/*
 * read.go, part of gocif.
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

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadFile reads a CIF document from the named file. Files ending in
// .gz, .zst or .zstd are decompressed transparently, so a compressed
// reference file can be used directly.
func ReadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{fmt.Sprintf("%s: %s", UnableToOpen, name), []string{"ReadFile"}}
	}
	defer f.Close()
	r, err := openDecompress(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	doc, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %s: %w", name, err)
	}
	return doc, nil
}

// openDecompress wraps f in the decompressor matching the filename
// extension, if any.
func openDecompress(f io.Reader, name string) (io.Reader, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, CError{fmt.Sprintf("gzip: %s", err.Error()), []string{"openDecompress"}}
		}
		return r, nil
	case strings.HasSuffix(low, ".zst"), strings.HasSuffix(low, ".zstd"):
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, CError{fmt.Sprintf("zstd: %s", err.Error()), []string{"openDecompress"}}
		}
		return r, nil
	}
	return f, nil
}

// token is one syntactic unit of a CIF file. Quoted marks values that
// came from quoted strings or semicolon text fields, which can never
// be keywords no matter what they contain.
type token struct {
	text   string
	quoted bool
}

// Read parses a CIF document from in. The whole document is kept in
// memory; this library does not do incremental parsing.
func Read(in io.Reader) (*Document, error) {
	tokens, err := tokenize(bufio.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	doc, err := parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return doc, nil
}

func tokenize(in *bufio.Reader) ([]token, error) {
	var tokens []token
	nline := 0
	for {
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		nline++
		line = strings.TrimRight(line, "\r\n")
		// A semicolon in the first column starts a text field that
		// runs until the next line starting with a semicolon.
		if strings.HasPrefix(line, ";") {
			var text []string
			text = append(text, line[1:])
			closed := false
			for {
				line, err = in.ReadString('\n')
				if err != nil && line == "" {
					break
				}
				nline++
				line = strings.TrimRight(line, "\r\n")
				if strings.HasPrefix(line, ";") {
					closed = true
					break
				}
				text = append(text, line)
			}
			if !closed {
				return nil, fmt.Errorf("unterminated text field starting near line %d", nline)
			}
			tokens = append(tokens, token{strings.Join(text, "\n"), true})
			continue
		}
		toks, err2 := splitLine(line)
		if err2 != nil {
			return nil, fmt.Errorf("line %d: %w", nline, err2)
		}
		tokens = append(tokens, toks...)
	}
	return tokens, nil
}

// splitLine splits one line into tokens, honoring single and double
// quotes and dropping comments.
func splitLine(line string) ([]token, error) {
	var toks []token
	i := 0
	n := len(line)
	for i < n {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		c := line[i]
		if c == '#' {
			break // the rest of the line is a comment
		}
		if c == '\'' || c == '"' {
			// The closing quote must be followed by whitespace or end
			// the line; quotes inside a value are kept as-is.
			j := i + 1
			for j < n {
				if line[j] == c && (j+1 >= n || line[j+1] == ' ' || line[j+1] == '\t') {
					break
				}
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("unterminated quoted string: %s", line[i:])
			}
			toks = append(toks, token{line[i+1 : j], true})
			i = j + 1
			continue
		}
		j := i
		for j < n && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		toks = append(toks, token{line[i:j], false})
		i = j
	}
	return toks, nil
}

// keyword tells whether t is a CIF reserved word or tag rather than a
// plain value.
func (t token) keyword() bool {
	if t.quoted {
		return false
	}
	low := strings.ToLower(t.text)
	return strings.HasPrefix(low, "_") || low == "loop_" || low == "stop_" ||
		low == "global_" || strings.HasPrefix(low, "data_") || strings.HasPrefix(low, "save_")
}

func parse(tokens []token) (*Document, error) {
	doc := new(Document)
	var cur *Block
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		low := strings.ToLower(t.text)
		switch {
		case !t.quoted && strings.HasPrefix(low, "data_"):
			cur = &Block{Name: t.text[len("data_"):]}
			doc.Blocks = append(doc.Blocks, cur)
			i++
		case !t.quoted && low == "loop_":
			if cur == nil {
				return nil, fmt.Errorf("loop_ before any data block")
			}
			i++
			var tags []string
			for i < len(tokens) && !tokens[i].quoted && strings.HasPrefix(tokens[i].text, "_") {
				tags = append(tags, tokens[i].text)
				i++
			}
			if len(tags) == 0 {
				return nil, fmt.Errorf("loop_ without tags")
			}
			var vals []string
			for i < len(tokens) && !tokens[i].keyword() {
				vals = append(vals, tokens[i].text)
				i++
			}
			if len(vals)%len(tags) != 0 {
				return nil, fmt.Errorf("loop %s: %d values don't fill %d columns evenly", tags[0], len(vals), len(tags))
			}
			cur.Items = append(cur.Items, &Item{Loop: &Loop{Tags: tags, Values: vals}})
		case !t.quoted && strings.HasPrefix(t.text, "_"):
			if cur == nil {
				return nil, fmt.Errorf("tag %s before any data block", t.text)
			}
			if i+1 >= len(tokens) || tokens[i+1].keyword() {
				return nil, fmt.Errorf("tag %s has no value", t.text)
			}
			cur.Items = append(cur.Items, &Item{Pair: &Pair{Tag: t.text, Value: tokens[i+1].text}})
			i += 2
		case !t.quoted && (low == "stop_" || low == "global_" || strings.HasPrefix(low, "save_")):
			// Not used in PDBx data files; skipped if present.
			i++
		default:
			return nil, fmt.Errorf("unexpected value %q outside any loop or pair", t.text)
		}
	}
	return doc, nil
}
