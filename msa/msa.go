// Package msa provides multiple sequence alignments and routines to read and
// write them in aligned FASTA and Stockholm formats.
package msa

import (
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

// An Alignment is a rectangular, non-empty collection of sequences of one
// kind. Columns are indexed by symbol, so a codon alignment has one column
// per codon. Gaps count as columns.
//
// Alignments are immutable; every method that changes the rows or columns
// returns a new Alignment.
type Alignment struct {
	name        string
	description string
	kind        alphabet.Kind
	rows        []seq.Sequence
	index       map[string]int
	columns     int
}

// New checks that rows form a valid alignment and returns it. Rows are never
// padded or truncated to make them fit.
func New(name string, rows []seq.Sequence, description string) (Alignment, error) {
	if len(rows) == 0 {
		return Alignment{}, ErrEmptyAlignment
	}
	first := rows[0]
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		if row.Kind() != first.Kind() {
			return Alignment{}, &MixedAlphabetError{
				Row:  i,
				Want: first.Kind(),
				Got:  row.Kind(),
			}
		}
		if row.Len() != first.Len() {
			return Alignment{}, &RaggedAlignmentError{
				Row:      i,
				Name:     row.Name(),
				Expected: first.Len(),
				Actual:   row.Len(),
			}
		}
		if _, ok := index[row.Name()]; ok {
			return Alignment{}, &DuplicateRowError{Row: i, Name: row.Name()}
		}
		index[row.Name()] = i
	}
	return Alignment{
		name:        name,
		description: strings.TrimSpace(description),
		kind:        first.Kind(),
		rows:        append([]seq.Sequence(nil), rows...),
		index:       index,
		columns:     first.Len(),
	}, nil
}

// Name returns the alignment's name, which may be empty.
func (a Alignment) Name() string { return a.name }

// Description returns the trimmed description given to New.
func (a Alignment) Description() string { return a.description }

// Kind returns the alphabet kind shared by every row.
func (a Alignment) Kind() alphabet.Kind { return a.kind }

// NumRows returns the number of sequences in the alignment.
func (a Alignment) NumRows() int { return len(a.rows) }

// NumColumns returns the length shared by every row.
func (a Alignment) NumColumns() int { return a.columns }

// Rows returns the sequences of the alignment in order.
func (a Alignment) Rows() []seq.Sequence {
	return append([]seq.Sequence(nil), a.rows...)
}

// RowAt returns the i'th row. It panics if i is out of range.
func (a Alignment) RowAt(i int) seq.Sequence {
	return a.rows[i]
}

// Row returns the row with the given name.
func (a Alignment) Row(name string) (seq.Sequence, error) {
	i, ok := a.index[name]
	if !ok {
		return seq.Sequence{}, &NotFoundError{Name: name}
	}
	return a.rows[i], nil
}

// Names returns the row names in order.
func (a Alignment) Names() []string {
	names := make([]string, len(a.rows))
	for i, row := range a.rows {
		names[i] = row.Name()
	}
	return names
}

// Column returns the symbols of every row at column i, in row order.
func (a Alignment) Column(i int) ([]string, error) {
	if i < 0 || i >= a.columns {
		return nil, &IndexError{Index: i, Len: a.columns}
	}
	col := make([]string, len(a.rows))
	for r, row := range a.rows {
		col[r] = row.Symbol(i)
	}
	return col, nil
}

// FastaDocument returns every row as a FASTA record wrapped at
// seq.DefaultColumns.
func (a Alignment) FastaDocument() string {
	return a.FastaFormat(seq.DefaultColumns)
}

// FastaFormat is like FastaDocument, but wraps at cols instead. If cols is
// <= 0, residues are not wrapped.
func (a Alignment) FastaFormat(cols int) string {
	var buf strings.Builder
	for _, row := range a.rows {
		buf.WriteString(row.FastaFormat(cols))
	}
	return buf.String()
}

// FilterRows returns a new alignment with only the named rows, in the order
// given.
func (a Alignment) FilterRows(names ...string) (Alignment, error) {
	rows := make([]seq.Sequence, 0, len(names))
	for _, name := range names {
		row, err := a.Row(name)
		if err != nil {
			return Alignment{}, err
		}
		rows = append(rows, row)
	}
	return New(a.name, rows, a.description)
}

// SelectColumns returns a new alignment made of the given columns, in the
// order given. Columns may be repeated.
func (a Alignment) SelectColumns(cols []int) (Alignment, error) {
	for _, c := range cols {
		if c < 0 || c >= a.columns {
			return Alignment{}, &IndexError{Index: c, Len: a.columns}
		}
	}
	w := alphabet.MustLookup(a.kind).Width()
	rows := make([]seq.Sequence, len(a.rows))
	for r, row := range a.rows {
		residues := make([]byte, 0, len(cols)*w)
		for _, c := range cols {
			residues = append(residues, row.Symbol(c)...)
		}
		s, err := seq.New(row.Name(), residues, a.kind, row.Description())
		if err != nil {
			return Alignment{}, err
		}
		rows[r] = s
	}
	return New(a.name, rows, a.description)
}

// GapMarker returns a marker with 'X' for every column that has a gap in
// at least one row, and 'O' for the others.
func (a Alignment) GapMarker() Marker {
	gap := alphabet.MustLookup(a.kind).Gap()
	track := make([]byte, a.columns)
	for i := range track {
		track[i] = Ungapped
		for _, row := range a.rows {
			if row.Symbol(i) == gap {
				track[i] = Gapped
				break
			}
		}
	}
	return Marker{
		Name:   "gap",
		legend: gapLegend,
		track:  track,
	}
}

// FilterSites keeps the columns that are not marked with the exclude
// character by any of the markers. Every marker must cover all columns.
func (a Alignment) FilterSites(exclude byte, markers ...Marker) (Alignment, error) {
	for _, m := range markers {
		if m.Len() != a.columns {
			return Alignment{}, &MarkerLengthError{
				Marker:   m.Name,
				Expected: a.columns,
				Actual:   m.Len(),
			}
		}
	}
	keep := make([]int, 0, a.columns)
	for i := 0; i < a.columns; i++ {
		excluded := false
		for _, m := range markers {
			if m.At(i) == exclude {
				excluded = true
				break
			}
		}
		if !excluded {
			keep = append(keep, i)
		}
	}
	return a.SelectColumns(keep)
}

// RemoveGapColumns drops every column that contains a gap.
func (a Alignment) RemoveGapColumns() (Alignment, error) {
	return a.FilterSites(Gapped, a.GapMarker())
}
