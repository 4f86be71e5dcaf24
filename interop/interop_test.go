package interop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/seq"
)

func TestLinearRoundTrip(t *testing.T) {
	seqs := []seq.Sequence{
		seq.MustNew("dna", "GATTACA-N", alphabet.Nucleotide, "a DNA sequence"),
		seq.MustNew("rna", "GAUUACA", alphabet.Nucleotide, ""),
		seq.MustNew("prot", "MKV*", alphabet.AminoAcid, "a protein"),
		seq.MustNew("orf", "ATG---TAA", alphabet.Codon, ""),
	}
	for _, s := range seqs {
		ls, err := ToLinear(s)
		if err != nil {
			t.Fatalf("%s", err)
		}
		if ls.ID != s.Name() || ls.Desc != s.Description() || ls.Len() != len(s.String()) {
			t.Fatalf("biogo sequence differs: %s %q %d", ls.ID, ls.Desc, ls.Len())
		}
		back, err := FromLinear(ls, s.Kind())
		if err != nil {
			t.Fatalf("%s", err)
		}
		if !back.Equal(s) {
			t.Fatalf("Round trip changed '%s' into '%s'", s.String(), back.String())
		}
	}
}

func TestFromLinearInvalid(t *testing.T) {
	s := seq.MustNew("prot", "MKV", alphabet.AminoAcid, "")
	ls, err := ToLinear(s)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := FromLinear(ls, alphabet.Nucleotide); !seq.IsValidation(err) {
		t.Fatalf("Expected a validation error but got %v", err)
	}
}

// Our writer's output must be readable by biogo's reader, and the reverse.
func TestCrossRead(t *testing.T) {
	input := ">s1 first sequence\nGATTACAGATTACA\n>s2\nGGGCCC\n"
	ours, err := fasta.ReadSequences(input, alphabet.Nucleotide)
	if err != nil {
		t.Fatalf("%s", err)
	}

	buf := new(bytes.Buffer)
	if err := fasta.NewWriter(buf).WriteAll(ours); err != nil {
		t.Fatalf("%s", err)
	}
	theirs, err := ReadFasta(buf, alphabet.Nucleotide)
	if err != nil {
		t.Fatalf("%s", err)
	}
	testSameSeqs(t, ours, theirs)

	buf.Reset()
	if err := WriteFasta(buf, ours, 5); err != nil {
		t.Fatalf("%s", err)
	}
	again, err := fasta.NewReader(strings.NewReader(buf.String()), alphabet.Nucleotide).ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}
	testSameSeqs(t, ours, again)
}

func testSameSeqs(t *testing.T, a, b []seq.Sequence) {
	if len(a) != len(b) {
		t.Fatalf("Expected %d sequences but got %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("Sequence %d differs:\n%s\n%s", i, a[i].FastaRecord(), b[i].FastaRecord())
		}
	}
}
