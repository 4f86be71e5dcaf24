package seq

import (
	"errors"
	"strings"
	"testing"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/bioerr"
)

func TestNew(t *testing.T) {
	s, err := NewString("s1", "GATTACA", alphabet.Nucleotide, "  a test  ")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.Name() != "s1" || s.Description() != "a test" || s.Len() != 7 {
		t.Fatalf("Unexpected sequence: %s %q %d", s.Name(), s.Description(), s.Len())
	}
	if s.IsNull() || !(Sequence{}).IsNull() {
		t.Fatalf("IsNull is wrong")
	}

	// The caller's slice is copied.
	residues := []byte("ACGT")
	s, err = New("s2", residues, alphabet.Nucleotide, "")
	if err != nil {
		t.Fatalf("%s", err)
	}
	residues[0] = 'T'
	if s.String() != "ACGT" {
		t.Fatalf("Sequence changed with its input: %s", s.String())
	}
	s.Residues()[0] = 'T'
	if s.String() != "ACGT" {
		t.Fatalf("Sequence changed through Residues: %s", s.String())
	}
}

func TestNewErrors(t *testing.T) {
	_, err := NewString("", "ACGT", alphabet.Nucleotide, "")
	if !errors.Is(err, ErrEmptyName) || !IsValidation(err) {
		t.Fatalf("Expected ErrEmptyName but got %v", err)
	}

	for _, name := range []string{"a>b", "a b", "a\nb", "a\tb", "a\vb", "a\fb", "a\u00a0b", "a\u0085"} {
		_, err := NewString(name, "ACGT", alphabet.Nucleotide, "")
		var nerr *InvalidNameError
		if !errors.As(err, &nerr) {
			t.Fatalf("Name %q: expected an *InvalidNameError but got %v", name, err)
		}
	}

	for _, desc := range []string{"a\nb", "a\rb", "two\r\nlines", "x\n>s2"} {
		_, err := NewString("s", "ACGT", alphabet.Nucleotide, desc)
		var derr *InvalidDescriptionError
		if !errors.As(err, &derr) || !IsValidation(err) {
			t.Fatalf("Description %q: expected an *InvalidDescriptionError but got %v", desc, err)
		}
	}
	for _, desc := range []string{"a\tb", "a  b", "a\vb"} {
		if _, err := NewString("s", "ACGT", alphabet.Nucleotide, desc); err != nil {
			t.Fatalf("Description %q: %s", desc, err)
		}
	}

	_, err = NewString("s", "ACJT", alphabet.Nucleotide, "")
	var serr *InvalidSymbolError
	if !errors.As(err, &serr) || serr.Pos != 2 || serr.Symbol != "J" {
		t.Fatalf("Expected an invalid symbol 'J' at 2 but got %v", err)
	}

	_, err = NewString("s", "ATGA-GTTT", alphabet.Codon, "")
	if !errors.As(err, &serr) || serr.Pos != 1 || serr.Symbol != "A-G" {
		t.Fatalf("Expected an invalid codon 'A-G' at 1 but got %v", err)
	}

	_, err = NewString("s", "ATGA", alphabet.Codon, "")
	var rerr *RaggedCodonError
	if !errors.As(err, &rerr) || rerr.Len != 4 {
		t.Fatalf("Expected a *RaggedCodonError but got %v", err)
	}

	if _, err = NewString("s", "A", alphabet.Kind(9), ""); !errors.Is(err, alphabet.ErrUnknownKind) {
		t.Fatalf("Expected ErrUnknownKind but got %v", err)
	}
}

func TestCodonSymbols(t *testing.T) {
	s := MustNew("orf", "ATG---TAA", alphabet.Codon, "")
	if s.Len() != 3 {
		t.Fatalf("Expected 3 codons but got %d", s.Len())
	}
	if syms := strings.Join(s.Symbols(), " "); syms != "ATG --- TAA" {
		t.Fatalf("Unexpected codons: %s", syms)
	}
	if s.Count("TAA") != 1 || s.Count("TGT") != 0 || s.Count("A") != 0 {
		t.Fatalf("Codon counts are wrong")
	}
}

func TestSlice(t *testing.T) {
	s := MustNew("s", "GATTACA", alphabet.Nucleotide, "d")
	sub, err := s.Slice(2, 5)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if sub.String() != "TTA" || sub.Name() != "s" || sub.Description() != "d" {
		t.Fatalf("Unexpected slice: %s", sub.FastaRecord())
	}
	if empty, err := s.Slice(7, 7); err != nil || empty.Len() != 0 {
		t.Fatalf("Expected an empty slice at the end, got %v", err)
	}
	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 8}} {
		_, err := s.Slice(r[0], r[1])
		if !errors.Is(err, bioerr.ErrIndex) {
			t.Fatalf("Slice(%d, %d): expected an index error but got %v", r[0], r[1], err)
		}
	}

	c := MustNew("orf", "ATGAAATAA", alphabet.Codon, "")
	sub, err = c.Slice(1, 3)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if sub.String() != "AAATAA" {
		t.Fatalf("Codon slices should be by triple, got %s", sub.String())
	}
}

func TestWithName(t *testing.T) {
	s := MustNew("s", "ACGT", alphabet.Nucleotide, "old")
	r, err := s.WithName("r", "new")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if r.Name() != "r" || r.Description() != "new" || r.String() != "ACGT" {
		t.Fatalf("Unexpected renamed sequence: %s", r.FastaRecord())
	}
	if s.Name() != "s" {
		t.Fatalf("WithName changed the original")
	}
	if _, err := s.WithName("", ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Expected ErrEmptyName but got %v", err)
	}
	if _, err := s.WithName("r", "line\n>injected"); !errors.Is(err, bioerr.ErrValidation) {
		t.Fatalf("Expected a validation error but got %v", err)
	}
}

func TestComposition(t *testing.T) {
	s := MustNew("s", "GATTACA", alphabet.Nucleotide, "")
	counts := s.Composition()
	if counts["A"] != 3 || counts["T"] != 2 || counts["G"] != 1 || counts["C"] != 1 {
		t.Fatalf("Unexpected composition: %v", counts)
	}
	if keys := strings.Join(SortedSymbols(counts), ""); keys != "ACGT" {
		t.Fatalf("Expected sorted symbols ACGT but got %s", keys)
	}
}

func TestFastaFormat(t *testing.T) {
	s := MustNew("s1", strings.Repeat("A", 65), alphabet.Nucleotide, "desc")
	answer := ">s1 desc\n" + strings.Repeat("A", 60) + "\nAAAAA\n"
	if s.FastaRecord() != answer {
		t.Fatalf("Expected\n%s\nbut got\n%s", answer, s.FastaRecord())
	}
	if got := s.FastaFormat(0); got != ">s1 desc\n"+strings.Repeat("A", 65)+"\n" {
		t.Fatalf("Unwrapped record is wrong:\n%s", got)
	}

	e := MustNew("empty", "", alphabet.AminoAcid, "")
	if e.FastaRecord() != ">empty\n" {
		t.Fatalf("Expected a bare header but got %q", e.FastaRecord())
	}
}

func TestEqual(t *testing.T) {
	a := MustNew("s", "ACGT", alphabet.Nucleotide, "")
	b := MustNew("s", "ACGT", alphabet.Nucleotide, "")
	c := MustNew("s", "ACGT", alphabet.AminoAcid, "")
	if !a.Equal(b) || a.Equal(c) {
		t.Fatalf("Equal is wrong")
	}
}
