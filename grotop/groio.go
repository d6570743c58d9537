/*
 * groio.go, part of brook.
 *
 * Copyright 2026 The brook Authors
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
 */

// Package gro reads the bonded sections of Gromacs topologies (itp/top files) and
// loads them into bondparams tables, one table per kind of term.
package gro

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	brook "github.com/rmera/brook"
	"github.com/rmera/brook/bondparams"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadOptions control how a topology is read. The zero value reads every supported
// section, converts 1-based Gromacs indexes to 0-based, and has no defines.
type ReadOptions struct {
	Sections []string //sections to read. Empty means all of Sections.
	OneBased bool     //keep the indexes as 1-based, instead of converting them.
	Defines  []string //flags considered defined for #ifdef blocks.
}

// Topology contains the bonded terms read from a topology, grouped by kind.
type Topology struct {
	terms map[string][]*Term
	order []string
	shift bool //file indexes are 1-based and must be shifted to 0-based
}

// Kinds returns the names of the kinds of terms in the topology, in the order
// they first appear in the file.
func (T *Topology) Kinds() []string {
	return slices.Clone(T.order)
}

// Terms returns the terms of the given kind, in file order.
func (T *Topology) Terms(kind string) []*Term {
	return T.terms[kind]
}

// Len returns the total number of terms.
func (T *Topology) Len() int {
	n := 0
	for _, v := range T.terms {
		n += len(v)
	}
	return n
}

func (T *Topology) add(t *Term) {
	if _, ok := T.terms[t.Kind]; !ok {
		T.order = append(T.order, t.Kind)
	}
	T.terms[t.Kind] = append(T.terms[t.Kind], t)
}

// Read reads the bonded terms of the Gromacs topology in r. opts can be nil.
// #include statements are not followed.
func Read(r io.Reader, opts *ReadOptions) (*Topology, error) {
	if opts == nil {
		opts = new(ReadOptions)
	}
	sections := opts.Sections
	if len(sections) == 0 {
		sections = Sections
	}
	for _, v := range sections {
		if !slices.Contains(Sections, v) {
			return nil, fmt.Errorf("grotop/Read: unsupported section %q", v)
		}
	}
	top := &Topology{terms: make(map[string][]*Term), shift: !opts.OneBased}
	h := newTopHeader()
	read := new(cond)
	current := ""
	br := bufio.NewReader(r)
	for nline := 1; ; nline++ {
		s, err := br.ReadString('\n')
		if rerr := top.readLine(s, nline, h, read, &current, sections, opts.Defines); rerr != nil {
			return nil, rerr
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("grotop/Read: line %d: %w", nline, err)
		}
	}
	return top, nil
}

func (T *Topology) readLine(s string, nline int, h *topHeader, read *cond, current *string, sections, defines []string) error {
	s = cleanString(s)
	if s == "" {
		return nil
	}
	if !read.read(s, defines) {
		return nil
	}
	if h.Is(s) {
		*current = h.Which(s)
		if *current == "" && slices.Contains(Sections, strings.Join(fi(strings.Trim(s, "[]")), "")) {
			return fmt.Errorf("grotop/Read: line %d: malformed header %q", nline, s)
		}
		if !slices.Contains(sections, *current) {
			*current = ""
		}
		return nil
	}
	if *current == "" {
		return nil
	}
	t, err := TermFromGroTop(s, *current)
	if err != nil {
		return fmt.Errorf("grotop/Read: line %d, section %s: %w", nline, *current, err)
	}
	t.Line = nline
	T.add(t)
	return nil
}

// ReadFile opens the topology in name (see Open) and reads it.
func ReadFile(name string, opts *ReadOptions) (*Topology, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	top, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return top, nil
}

// Table returns a bondparams table for the given kind, with one row per term
// of that kind, in file order. log is passed to the table as its log target.
func (T *Topology) Table(kind string, log ...io.Writer) (*bondparams.Table, error) {
	k, ok := KindByName(kind)
	if !ok {
		return nil, fmt.Errorf("grotop/Topology.Table: unknown kind %q", kind)
	}
	terms := T.terms[kind]
	tab, err := bondparams.New(k.Name, k.Particles, k.Parameters, len(terms), log...)
	if err != nil {
		return nil, brook.ErrDecorate(err, "Topology.Table")
	}
	for i, t := range terms {
		ids, err := t.ZeroBased(T.shift)
		if err != nil {
			return nil, fmt.Errorf("grotop/Topology.Table: %s: %w", kind, err)
		}
		if err := tab.SetBond(i, ids, t.Params); err != nil {
			return nil, brook.ErrDecorate(err, "Topology.Table")
		}
	}
	return tab, nil
}

// Tables returns one table per kind of term in the topology, in the order of Kinds.
func (T *Topology) Tables(log ...io.Writer) ([]*bondparams.Table, error) {
	ret := make([]*bondparams.Table, 0, len(T.order))
	for _, k := range T.order {
		tab, err := T.Table(k, log...)
		if err != nil {
			return nil, err
		}
		ret = append(ret, tab)
	}
	return ret, nil
}

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the topology file name for reading. Files ending in .gz and .zst
// are decompressed transparently.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("grotop/Open: %w", err)
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("grotop/Open: %s: %w", name, err)
		}
		return &multiCloser{Reader: z, closers: []func() error{z.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("grotop/Open: %s: %w", name, err)
		}
		zclose := func() error { z.Close(); return nil }
		return &multiCloser{Reader: z, closers: []func() error{zclose, f.Close}}, nil
	}
	return f, nil
}
