// Package interop converts sequences to and from the types of the biogo
// library, so that the rest of biogo (alignment, feature and pack tools) can
// be used on data read with this module and the other way around.
package interop

import (
	"bytes"
	"fmt"
	"io"

	balpha "github.com/biogo/biogo/alphabet"
	bfasta "github.com/biogo/biogo/io/seqio/fasta"
	bioseq "github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

// Alphabet returns the biogo alphabet matching a sequence kind. Codon
// sequences are stored as their bases, so they use the DNA alphabet.
func Alphabet(kind alphabet.Kind) (balpha.Alphabet, error) {
	switch kind {
	case alphabet.Nucleotide, alphabet.Codon:
		return balpha.DNAredundant, nil
	case alphabet.AminoAcid:
		return balpha.Protein, nil
	}
	return nil, fmt.Errorf("%w: %d", alphabet.ErrUnknownKind, int(kind))
}

// ToLinear converts s to a biogo linear sequence with the same ID,
// description and residues. RNA sequences get the redundant RNA alphabet.
func ToLinear(s seq.Sequence) (*linear.Seq, error) {
	alpha, err := Alphabet(s.Kind())
	if err != nil {
		return nil, err
	}
	residues := s.Residues()
	if s.Kind() == alphabet.Nucleotide &&
		bytes.IndexByte(residues, 'U') >= 0 && bytes.IndexByte(residues, 'T') < 0 {
		alpha = balpha.RNAredundant
	}
	ls := linear.NewSeq(s.Name(), balpha.BytesToLetters(residues), alpha)
	ls.Desc = s.Description()
	return ls, nil
}

// FromLinear converts a biogo linear sequence into a validated sequence of
// the given kind. biogo keeps residue case, so residues are upper cased
// first.
func FromLinear(ls *linear.Seq, kind alphabet.Kind) (seq.Sequence, error) {
	residues := bytes.ToUpper(balpha.LettersToBytes(ls.Seq))
	return seq.New(ls.ID, residues, kind, ls.Desc)
}

// ReadFasta reads FASTA input with biogo's reader and converts every record.
func ReadFasta(r io.Reader, kind alphabet.Kind) ([]seq.Sequence, error) {
	alpha, err := Alphabet(kind)
	if err != nil {
		return nil, err
	}
	template := &linear.Seq{Annotation: bioseq.Annotation{Alpha: alpha}}
	fr := bfasta.NewReader(r, template)

	var seqs []seq.Sequence
	for {
		s, err := fr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected biogo sequence type %T", s)
		}
		conv, err := FromLinear(ls, kind)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(seqs), err)
		}
		seqs = append(seqs, conv)
	}
	return seqs, nil
}

// WriteFasta writes seqs with biogo's FASTA writer, wrapping residues at
// width columns.
func WriteFasta(w io.Writer, seqs []seq.Sequence, width int) error {
	fw := bfasta.NewWriter(w, width)
	for _, s := range seqs {
		ls, err := ToLinear(s)
		if err != nil {
			return err
		}
		if _, err := fw.Write(ls); err != nil {
			return err
		}
	}
	return nil
}
