package bseq

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/msa"
	"github.com/nigevogen/bseq/transform"
)

const gattaca = ">s1\nGATTACA\n>s2\nGATCACA\n"

func TestReadFastaSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ex.fasta")
	if err := os.WriteFile(path, []byte(gattaca), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	for _, src := range []string{gattaca, path} {
		seqs, err := ReadFastaSequences(src, alphabet.Nucleotide)
		if err != nil {
			t.Fatalf("%s", err)
		}
		if len(seqs) != 2 || seqs[1].String() != "GATCACA" {
			t.Fatalf("Unexpected sequences from %q: %v", src, seqs)
		}
	}
}

func TestReadFastaAlignment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ex.fasta")
	if err := os.WriteFile(path, []byte(gattaca), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	a, err := ReadFastaAlignment(path, alphabet.Nucleotide, "ex", "")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if a.NumRows() != 2 || a.NumColumns() != 7 {
		t.Fatalf("Expected a 2x7 alignment but got %dx%d", a.NumRows(), a.NumColumns())
	}
	cons, err := transform.Consensus(a)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if cons.String() != "GATCACA" {
		t.Fatalf("Expected consensus GATCACA but got %s", cons.String())
	}
	if a.FastaDocument() != gattaca {
		t.Fatalf("FASTA document does not round trip:\n%s", a.FastaDocument())
	}

	_, err = ReadFastaAlignment(">a\nACGT\n>b\nAC\n", alphabet.Nucleotide, "bad", "")
	var rerr *msa.RaggedAlignmentError
	if !errors.As(err, &rerr) || rerr.Row != 1 {
		t.Fatalf("Expected a ragged alignment error at row 1 but got %v", err)
	}
}

func TestIsFastaText(t *testing.T) {
	tests := map[string]bool{
		">s1\nACGT":         true,
		"  >s1":             true,
		"seqs.fasta":        false,
		"-":                 false,
		"dir/seqs.fasta.gz": false,
		"ACGT":              false,
		"ACGT\n":            true,
	}
	for src, want := range tests {
		if got := IsFastaText(src); got != want {
			t.Fatalf("IsFastaText(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestReadFastaHeaderlessLine(t *testing.T) {
	_, err := ReadFastaSequences("ACGT", alphabet.Nucleotide)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected a missing file error but got %v", err)
	}

	// With a line break it is read as text, and has no header.
	if _, err := ReadFastaSequences("ACGT\n", alphabet.Nucleotide); err == nil {
		t.Fatalf("Expected an error for FASTA text without a header")
	}
}
