package gcode

import (
	"fmt"
	"sort"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/bioerr"
)

const (
	// Stop is the amino acid symbol for a stop codon.
	Stop byte = '*'

	// Unknown is the amino acid placeholder used for codons containing a
	// nucleotide ambiguity code.
	Unknown byte = 'X'
)

// InvalidCodonError is returned when a codon is not three characters long
// or contains a character outside of the nucleotide alphabet.
type InvalidCodonError struct {
	Codon string
}

func (e *InvalidCodonError) Error() string {
	return fmt.Sprintf("invalid codon %q", e.Codon)
}

func (e *InvalidCodonError) Is(target error) bool { return target == bioerr.ErrDomain }

// UnknownTableError is returned by ByID for an unsupported table number.
type UnknownTableError struct {
	ID int
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown genetic code table %d", e.ID)
}

func (e *UnknownTableError) Is(target error) bool { return target == bioerr.ErrNotFound }

// A Table is an immutable genetic code.
type Table struct {
	ID    int
	Name  string
	aas   [64]byte
	start [64]bool
}

// The order NCBI uses for the bases in each codon position.
const baseOrder = "TCAG"

var baseIndex [256]int8

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	for i := 0; i < len(baseOrder); i++ {
		baseIndex[baseOrder[i]] = int8(i)
	}
	baseIndex['U'] = baseIndex['T']
}

// newTable builds a table from an NCBI amino acid string and start string.
// Both must be exactly 64 characters long.
func newTable(id int, name, aas, starts string) *Table {
	if len(aas) != 64 || len(starts) != 64 {
		panic(fmt.Sprintf("genetic code %d: malformed table data", id))
	}
	t := &Table{ID: id, Name: name}
	for i := 0; i < 64; i++ {
		t.aas[i] = aas[i]
		t.start[i] = starts[i] == 'M'
	}
	return t
}

func codonIndex(codon string) (int, bool) {
	if len(codon) != 3 {
		return 0, false
	}
	idx := 0
	for i := 0; i < 3; i++ {
		b := baseIndex[codon[i]]
		if b < 0 {
			return 0, false
		}
		idx = idx*4 + int(b)
	}
	return idx, true
}

// Translate returns the amino acid symbol encoded by codon.
//
// A stop codon translates to Stop. A codon containing the gap character
// translates to alphabet.Gap, and a codon containing a nucleotide ambiguity
// code (like 'N') translates to Unknown. Any other character, or a codon that
// is not 3 characters long, results in an *InvalidCodonError.
//
// 'U' is treated as 'T', so RNA codons may be used.
func (t *Table) Translate(codon string) (byte, error) {
	if idx, ok := codonIndex(codon); ok {
		return t.aas[idx], nil
	}
	if len(codon) != 3 {
		return 0, &InvalidCodonError{Codon: codon}
	}
	nucl := alphabet.MustLookup(alphabet.Nucleotide)
	gapped, ambiguous := false, false
	for i := 0; i < 3; i++ {
		switch b := codon[i]; {
		case b == alphabet.Gap:
			gapped = true
		case nucl.IsAmbiguous(string(b)):
			ambiguous = true
		case baseIndex[b] < 0:
			return 0, &InvalidCodonError{Codon: codon}
		}
	}
	if gapped {
		return alphabet.Gap, nil
	}
	if ambiguous {
		return Unknown, nil
	}
	return 0, &InvalidCodonError{Codon: codon}
}

// IsStop reports whether codon is a stop codon in this table.
func (t *Table) IsStop(codon string) bool {
	idx, ok := codonIndex(codon)
	return ok && t.aas[idx] == Stop
}

// IsStart reports whether codon may act as an initiation codon in this
// table.
func (t *Table) IsStart(codon string) bool {
	idx, ok := codonIndex(codon)
	return ok && t.start[idx]
}

// A Codon is one entry of a genetic code listing.
type Codon struct {
	Codon     string
	AminoAcid byte
	Start     bool
}

// Codons lists all 64 unambiguous DNA codons of the table in lexicographic
// order.
func (t *Table) Codons() []Codon {
	list := make([]Codon, 0, 64)
	for i := 0; i < 64; i++ {
		codon := []byte{baseOrder[i/16], baseOrder[(i/4)%4], baseOrder[i%4]}
		list = append(list, Codon{
			Codon:     string(codon),
			AminoAcid: t.aas[i],
			Start:     t.start[i],
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Codon < list[j].Codon })
	return list
}

func (t *Table) String() string {
	return fmt.Sprintf("%d (%s)", t.ID, t.Name)
}
