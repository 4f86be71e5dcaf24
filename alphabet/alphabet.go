package alphabet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nigevogen/bseq/bioerr"
)

// Kind identifies the type of a sequence. The set of kinds is closed.
type Kind int

const (
	Nucleotide Kind = iota
	AminoAcid
	Codon
)

// Gap is the gap character for every alphabet.
const Gap byte = '-'

// GapCodon is the gap symbol of the codon alphabet.
const GapCodon = "---"

// ErrUnknownKind is returned when a Kind outside of the enumeration above
// reaches the registry.
var ErrUnknownKind = fmt.Errorf("%w: unknown alphabet kind", bioerr.ErrValidation)

const (
	nucleotideBases     = "ACGTU"
	nucleotideAmbiguous = "RYSWKMBDHVN"
	aminoAcids          = "ACDEFGHIKLMNPQRSTVWY"
	aminoAcidsExtra     = "BZJUOX*"
)

func (k Kind) String() string {
	switch k {
	case Nucleotide:
		return "nucleotide"
	case AminoAcid:
		return "protein"
	case Codon:
		return "codon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	return k == Nucleotide || k == AminoAcid || k == Codon
}

// ParseKind converts a user supplied name (from a config file or a command
// line flag) to a Kind. Matching is case insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nucleotide", "nucl", "dna", "rna":
		return Nucleotide, nil
	case "protein", "prot", "aminoacid", "amino", "aa":
		return AminoAcid, nil
	case "codon":
		return Codon, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// An Alphabet is the immutable set of symbols that are valid for one Kind.
type Alphabet struct {
	kind      Kind
	width     int
	letters   [256]bool
	ambiguous [256]bool
	symbols   []string
}

var registry [3]*Alphabet

func init() {
	nucl := &Alphabet{kind: Nucleotide, width: 1}
	for _, set := range []string{nucleotideBases, nucleotideAmbiguous} {
		for i := 0; i < len(set); i++ {
			nucl.letters[set[i]] = true
			nucl.symbols = append(nucl.symbols, set[i:i+1])
		}
	}
	for i := 0; i < len(nucleotideAmbiguous); i++ {
		nucl.ambiguous[nucleotideAmbiguous[i]] = true
	}
	sort.Strings(nucl.symbols)

	prot := &Alphabet{kind: AminoAcid, width: 1}
	for _, set := range []string{aminoAcids, aminoAcidsExtra} {
		for i := 0; i < len(set); i++ {
			prot.letters[set[i]] = true
			prot.symbols = append(prot.symbols, set[i:i+1])
		}
	}
	prot.ambiguous['B'] = true
	prot.ambiguous['Z'] = true
	prot.ambiguous['J'] = true
	prot.ambiguous['X'] = true
	sort.Strings(prot.symbols)

	// A codon is valid when each of its three letters is a valid nucleotide,
	// so the codon alphabet shares the nucleotide letter table.
	codon := &Alphabet{kind: Codon, width: 3}
	codon.letters = nucl.letters
	codon.ambiguous = nucl.ambiguous
	for _, a := range nucl.symbols {
		for _, b := range nucl.symbols {
			for _, c := range nucl.symbols {
				codon.symbols = append(codon.symbols, a+b+c)
			}
		}
	}
	sort.Strings(codon.symbols)

	registry[Nucleotide] = nucl
	registry[AminoAcid] = prot
	registry[Codon] = codon
}

// Lookup returns the alphabet registered for kind.
func Lookup(kind Kind) (*Alphabet, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return registry[kind], nil
}

// MustLookup is like Lookup, but panics for an unknown kind.
func MustLookup(kind Kind) *Alphabet {
	a, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return a
}

// SymbolsFor returns the sorted symbols of the alphabet for kind. The gap
// symbol is not included.
func SymbolsFor(kind Kind) ([]string, error) {
	a, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return a.Symbols(), nil
}

// IsValid reports whether symbol belongs to the alphabet of kind or is its
// gap symbol. It returns false for an unknown kind.
func IsValid(kind Kind, symbol string) bool {
	a, err := Lookup(kind)
	if err != nil {
		return false
	}
	return a.IsValid(symbol)
}

// GapSymbol returns the gap character used by kind.
func GapSymbol(kind Kind) (byte, error) {
	if _, err := Lookup(kind); err != nil {
		return 0, err
	}
	return Gap, nil
}

// Kind returns the kind this alphabet describes.
func (a *Alphabet) Kind() Kind {
	return a.kind
}

// Width is the number of characters making up one symbol: 3 for codons and
// 1 otherwise.
func (a *Alphabet) Width() int {
	return a.width
}

// Symbols returns a sorted copy of the symbols in the alphabet.
func (a *Alphabet) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Gap returns the gap symbol, which is Width() gap characters long.
func (a *Alphabet) Gap() string {
	if a.width == 3 {
		return GapCodon
	}
	return string(Gap)
}

// IsValid reports whether symbol is in the alphabet or is the gap symbol.
func (a *Alphabet) IsValid(symbol string) bool {
	if len(symbol) != a.width {
		return false
	}
	if symbol == a.Gap() {
		return true
	}
	for i := 0; i < len(symbol); i++ {
		if !a.letters[symbol[i]] {
			return false
		}
	}
	return true
}

// ValidLetter reports whether the single character b may appear in a
// sequence of this alphabet. For codons, this is a necessary but not
// sufficient condition (a triple mixing gaps and bases is invalid).
func (a *Alphabet) ValidLetter(b byte) bool {
	return b == Gap || a.letters[b]
}

// IsAmbiguous reports whether symbol is a valid symbol containing an
// ambiguity code (e.g., 'N' for nucleotides or 'X' for amino acids).
func (a *Alphabet) IsAmbiguous(symbol string) bool {
	if !a.IsValid(symbol) {
		return false
	}
	for i := 0; i < len(symbol); i++ {
		if a.ambiguous[symbol[i]] {
			return true
		}
	}
	return false
}
