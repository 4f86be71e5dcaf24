package seq

import (
	"bytes"
	"sort"
	"strings"
	"unicode"

	"github.com/nigevogen/bseq/alphabet"
)

// DefaultColumns is the line width used by FastaRecord.
const DefaultColumns = 60

// A Sequence is a named, typed and validated run of residues. The zero value
// is a null sequence (see IsNull); use New to build a real one.
type Sequence struct {
	name        string
	description string
	kind        alphabet.Kind
	residues    []byte
}

// New creates a validated sequence. The residues are copied, so the caller
// may reuse the slice afterwards. An empty description means the sequence
// has none.
//
// For codon sequences, residues holds the nucleotide characters; there must
// be a multiple of 3 of them, and each triple must either be made entirely
// of nucleotide symbols or be the gap codon "---".
func New(name string, residues []byte, kind alphabet.Kind, description string) (Sequence, error) {
	alpha, err := alphabet.Lookup(kind)
	if err != nil {
		return Sequence{}, err
	}
	if err := checkName(name); err != nil {
		return Sequence{}, err
	}
	if err := checkDescription(description); err != nil {
		return Sequence{}, err
	}
	if err := checkResidues(alpha, residues); err != nil {
		return Sequence{}, err
	}
	return Sequence{
		name:        name,
		description: strings.TrimSpace(description),
		kind:        kind,
		residues:    append(make([]byte, 0, len(residues)), residues...),
	}, nil
}

// NewString is a convenience wrapper around New for string residues.
func NewString(name, residues string, kind alphabet.Kind, description string) (Sequence, error) {
	return New(name, []byte(residues), kind, description)
}

// MustNew is like New, but panics on error. It is meant for tests and
// package level fixtures.
func MustNew(name, residues string, kind alphabet.Kind, description string) Sequence {
	s, err := NewString(name, residues, kind, description)
	if err != nil {
		panic(err)
	}
	return s
}

// A name is the first token of a FASTA header, so it may not contain the
// header marker or anything IsNameBreak splits on.
func checkName(name string) error {
	if len(name) == 0 {
		return ErrEmptyName
	}
	for _, c := range name {
		if c == '>' || IsNameBreak(c) {
			return &InvalidNameError{Name: name, Char: c}
		}
	}
	return nil
}

// IsNameBreak reports whether c ends the name in a FASTA header.
func IsNameBreak(c rune) bool {
	return unicode.IsSpace(c)
}

// A description must fit on the header line.
func checkDescription(desc string) error {
	if i := strings.IndexAny(desc, "\n\r"); i >= 0 {
		return &InvalidDescriptionError{Description: desc, Char: desc[i]}
	}
	return nil
}

func checkResidues(alpha *alphabet.Alphabet, residues []byte) error {
	w := alpha.Width()
	if w == 1 {
		for i, b := range residues {
			if !alpha.ValidLetter(b) {
				return &InvalidSymbolError{Pos: i, Symbol: string(b)}
			}
		}
		return nil
	}
	if len(residues)%w != 0 {
		return &RaggedCodonError{Len: len(residues)}
	}
	for i := 0; i < len(residues); i += w {
		sym := string(residues[i : i+w])
		if !alpha.IsValid(sym) {
			return &InvalidSymbolError{Pos: i / w, Symbol: sym}
		}
	}
	return nil
}

// Name returns the identifier of the sequence.
func (s Sequence) Name() string { return s.name }

// Description returns the free text following the name in a FASTA header.
func (s Sequence) Description() string { return s.description }

// Kind returns the alphabet kind of the sequence.
func (s Sequence) Kind() alphabet.Kind { return s.kind }

// IsNull returns true for the zero Sequence.
func (s Sequence) IsNull() bool {
	return len(s.name) == 0 && s.residues == nil
}

// Len returns the number of residues, or the number of codons for a codon
// sequence.
func (s Sequence) Len() int {
	return len(s.residues) / s.width()
}

func (s Sequence) width() int {
	if s.kind == alphabet.Codon {
		return 3
	}
	return 1
}

// Residues returns a copy of the raw residue characters.
func (s Sequence) Residues() []byte {
	return append([]byte(nil), s.residues...)
}

// String returns the residues as a string.
func (s Sequence) String() string {
	return string(s.residues)
}

// Symbol returns the i'th symbol: one character, or a triple for codons.
// It panics if i is out of range, like indexing a slice.
func (s Sequence) Symbol(i int) string {
	w := s.width()
	return string(s.residues[i*w : (i+1)*w])
}

// Symbols returns every symbol of the sequence in order.
func (s Sequence) Symbols() []string {
	syms := make([]string, s.Len())
	for i := range syms {
		syms[i] = s.Symbol(i)
	}
	return syms
}

// Slice returns the symbols in [start, end) as a new sequence with the same
// name, description and kind. The new sequence shares no memory with s.
func (s Sequence) Slice(start, end int) (Sequence, error) {
	if start < 0 || start > end || end > s.Len() {
		return Sequence{}, &IndexError{Start: start, End: end, Len: s.Len()}
	}
	w := s.width()
	return Sequence{
		name:        s.name,
		description: s.description,
		kind:        s.kind,
		residues:    append([]byte{}, s.residues[start*w:end*w]...),
	}, nil
}

// WithName returns a copy of s with a different name and description. Both
// are validated like they are in New.
func (s Sequence) WithName(name, description string) (Sequence, error) {
	if err := checkName(name); err != nil {
		return Sequence{}, err
	}
	if err := checkDescription(description); err != nil {
		return Sequence{}, err
	}
	cp := s
	cp.name = name
	cp.description = strings.TrimSpace(description)
	cp.residues = s.Residues()
	return cp, nil
}

// Equal reports whether two sequences have the same name, description, kind
// and residues.
func (s Sequence) Equal(o Sequence) bool {
	return s.name == o.name &&
		s.description == o.description &&
		s.kind == o.kind &&
		bytes.Equal(s.residues, o.residues)
}

// Count returns the number of occurrences of symbol in the sequence. For
// codon sequences, symbol is a triple and only in-frame matches count.
func (s Sequence) Count(symbol string) int {
	if len(symbol) != s.width() {
		return 0
	}
	n := 0
	for i := 0; i < s.Len(); i++ {
		if s.Symbol(i) == symbol {
			n++
		}
	}
	return n
}

// Composition maps every symbol present in the sequence to the number of
// times it occurs.
func (s Sequence) Composition() map[string]int {
	counts := make(map[string]int)
	for i := 0; i < s.Len(); i++ {
		counts[s.Symbol(i)]++
	}
	return counts
}

// SortedSymbols returns the keys of a composition map in lexicographic
// order.
func SortedSymbols(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FastaRecord returns the sequence in FASTA format, wrapped at
// DefaultColumns.
func (s Sequence) FastaRecord() string {
	return s.FastaFormat(DefaultColumns)
}

// FastaFormat returns the FASTA record for this sequence with the residues
// wrapped at the number of columns given. If cols is <= 0, then no wrapping
// is done. The record always ends with a new line.
func (s Sequence) FastaFormat(cols int) string {
	var buf strings.Builder
	buf.Grow(len(s.name) + len(s.description) + len(s.residues) + 8)
	buf.WriteByte('>')
	buf.WriteString(s.name)
	if len(s.description) > 0 {
		buf.WriteByte(' ')
		buf.WriteString(s.description)
	}
	buf.WriteByte('\n')
	if cols <= 0 {
		if len(s.residues) > 0 {
			buf.Write(s.residues)
			buf.WriteByte('\n')
		}
		return buf.String()
	}
	for start := 0; start < len(s.residues); start += cols {
		end := start + cols
		if end > len(s.residues) {
			end = len(s.residues)
		}
		buf.Write(s.residues[start:end])
		buf.WriteByte('\n')
	}
	return buf.String()
}
