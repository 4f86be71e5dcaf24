/*
Package bseq reads and writes biological sequences and alignments in the FASTA
format and derives new sequences from them.

The work is split among these packages:

	alphabet   the closed set of sequence kinds and their valid symbols
	seq        the immutable, validated Sequence value
	gcode      NCBI genetic code tables
	msa        alignments, column markers and alignment file formats
	fasta      the FASTA reader and writer
	transform  reverse complement, translation and consensus
	config     YAML settings for the command line tools
	interop    conversion to and from biogo types

This package only has the entry points most programs need.
*/
package bseq

import (
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/msa"
	"github.com/nigevogen/bseq/seq"
)

// IsFastaText reports whether src looks like FASTA text rather than a path:
// it starts with '>' after leading whitespace, or spans several lines. A
// single line without a header, such as "ACGT", is taken to be a path.
func IsFastaText(src string) bool {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	return strings.HasPrefix(trimmed, ">") || strings.ContainsAny(src, "\n")
}

// ReadFastaSequences reads every record of src, which is either FASTA text
// or the path of a FASTA file ("-" for standard input, gzip is detected).
// See IsFastaText for how the two are told apart; headerless one-line text
// fails with the error from opening it as a file, usually fs.ErrNotExist.
func ReadFastaSequences(src string, kind alphabet.Kind) ([]seq.Sequence, error) {
	if IsFastaText(src) {
		return fasta.ReadSequences(src, kind)
	}
	return fasta.ReadFile(src, kind)
}

// ReadFastaAlignment reads src like ReadFastaSequences, and builds an
// alignment from the records. Records of different lengths are reported as
// a *msa.RaggedAlignmentError.
func ReadFastaAlignment(src string, kind alphabet.Kind, name, description string) (msa.Alignment, error) {
	if IsFastaText(src) {
		return msa.ReadFastaString(src, kind, name, description)
	}
	f, err := fasta.Open(src)
	if err != nil {
		return msa.Alignment{}, err
	}
	defer f.Close()
	return msa.ReadFasta(f, kind, name, description)
}
