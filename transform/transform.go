package transform

import (
	"bytes"
	"sort"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/gcode"
	"github.com/nigevogen/bseq/msa"
	"github.com/nigevogen/bseq/seq"
)

var complements [256]byte

func init() {
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN", "--"}
	for _, p := range pairs {
		complements[p[0]] = p[1]
		complements[p[1]] = p[0]
	}
}

// ReverseComplement returns the reverse complement of a DNA sequence,
// keeping its name and description. Ambiguity codes are complemented too
// (R <-> Y, K <-> M, B <-> V, D <-> H; S, W and N are their own complement),
// and gaps stay gaps.
//
// A 'U' anywhere in s is rejected with a *MixedNucleotideError; RNA goes
// through ReverseComplementRNA. Whether s is DNA or RNA cannot be told from
// its residues alone ("UUC" reverse complements to "GAA"), so the caller
// picks.
func ReverseComplement(s seq.Sequence) (seq.Sequence, error) {
	return reverseComplement(s, false)
}

// ReverseComplementRNA is ReverseComplement for RNA: 'A' pairs with 'U', and
// a 'T' anywhere in s is rejected with a *MixedNucleotideError.
func ReverseComplementRNA(s seq.Sequence) (seq.Sequence, error) {
	return reverseComplement(s, true)
}

func reverseComplement(s seq.Sequence, rna bool) (seq.Sequence, error) {
	if s.Kind() != alphabet.Nucleotide {
		return seq.Sequence{}, &TypeMismatchError{Op: "reverse complement", Kind: s.Kind()}
	}
	foreign, pairA := byte('U'), byte('T')
	if rna {
		foreign, pairA = 'T', 'U'
	}
	residues := s.Residues()
	if i := bytes.IndexByte(residues, foreign); i >= 0 {
		return seq.Sequence{}, &MixedNucleotideError{Name: s.Name(), Pos: i, RNA: rna}
	}

	rc := make([]byte, len(residues))
	for i, b := range residues {
		c := complements[b]
		switch b {
		case 'A':
			c = pairA
		case pairA:
			c = 'A'
		}
		rc[len(rc)-1-i] = c
	}
	return seq.New(s.Name(), rc, alphabet.Nucleotide, s.Description())
}

// TranslateOptions control Translate. The zero value translates frame 0
// with the standard code, stops at the first stop codon and drops trailing
// bases.
type TranslateOptions struct {
	// Table is the genetic code to use. nil means gcode.Standard.
	Table *gcode.Table

	// When set, translation continues past stop codons, which appear as
	// '*' in the result.
	ThroughStops bool

	Trailing TrailingPolicy

	// Frame is the number of leading bases (0, 1 or 2) skipped before the
	// first codon.
	Frame int
}

// Translate translates a nucleotide or codon sequence into an amino acid
// sequence with the same name and description.
//
// Codons are read in frame. Translation ends before the first stop codon
// unless ThroughStops is set. A codon containing a gap translates to a gap,
// and one containing an ambiguity code translates to gcode.Unknown.
func Translate(s seq.Sequence, opts TranslateOptions) (seq.Sequence, error) {
	if s.Kind() == alphabet.AminoAcid {
		return seq.Sequence{}, &TypeMismatchError{Op: "translate", Kind: s.Kind()}
	}
	if opts.Frame < 0 || opts.Frame > 2 {
		return seq.Sequence{}, &FrameError{Frame: opts.Frame}
	}
	table := opts.Table
	if table == nil {
		table = gcode.Standard
	}

	bases := s.Residues()
	if opts.Frame < len(bases) {
		bases = bases[opts.Frame:]
	} else {
		bases = bases[:0]
	}
	if len(bases)%3 != 0 && opts.Trailing == FailTrailing {
		return seq.Sequence{}, &IncompleteCodonError{Len: len(bases)}
	}

	aas := make([]byte, 0, len(bases)/3)
	for i := 0; i+3 <= len(bases); i += 3 {
		aa, err := table.Translate(string(bases[i : i+3]))
		if err != nil {
			return seq.Sequence{}, err
		}
		if aa == gcode.Stop && !opts.ThroughStops {
			break
		}
		aas = append(aas, aa)
	}
	return seq.New(s.Name(), aas, alphabet.AminoAcid, s.Description())
}

// Consensus returns the most common non-gap symbol of every column of the
// alignment. Ties go to the symbol that sorts first, and a column of only
// gaps gives a gap. The result has the alignment's kind and is named after
// the alignment with a "_consensus" suffix.
func Consensus(a msa.Alignment) (seq.Sequence, error) {
	alpha, err := alphabet.Lookup(a.Kind())
	if err != nil {
		return seq.Sequence{}, err
	}
	gap := alpha.Gap()

	residues := make([]byte, 0, a.NumColumns()*alpha.Width())
	counts := make(map[string]int)
	for i := 0; i < a.NumColumns(); i++ {
		col, err := a.Column(i)
		if err != nil {
			return seq.Sequence{}, err
		}
		for k := range counts {
			delete(counts, k)
		}
		for _, sym := range col {
			if sym != gap {
				counts[sym]++
			}
		}
		residues = append(residues, mostCommon(counts, gap)...)
	}

	name := "consensus"
	if a.Name() != "" {
		name = a.Name() + "_consensus"
	}
	return seq.New(name, residues, a.Kind(), "")
}

func mostCommon(counts map[string]int, gap string) string {
	if len(counts) == 0 {
		return gap
	}
	syms := make([]string, 0, len(counts))
	for sym := range counts {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	best := syms[0]
	for _, sym := range syms[1:] {
		if counts[sym] > counts[best] {
			best = sym
		}
	}
	return best
}
