package msa

import (
	"errors"
	"io"
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/seq"
)

// ReadFasta reads an aligned FASTA file into an alignment. Every record is
// validated against kind, and a record whose length differs from the first
// record's length is reported as a *RaggedAlignmentError.
func ReadFasta(r io.Reader, kind alphabet.Kind, name, description string) (Alignment, error) {
	return ReadFastaFrom(fasta.NewReader(r, kind), name, description)
}

// ReadFastaString is ReadFasta on a string.
func ReadFastaString(text string, kind alphabet.Kind, name, description string) (Alignment, error) {
	return ReadFasta(strings.NewReader(text), kind, name, description)
}

// ReadFastaFrom is like ReadFasta, but uses a reader that has already been
// configured (for example, with a record error policy).
func ReadFastaFrom(r *fasta.Reader, name, description string) (Alignment, error) {
	ar := &fasta.AlignedReader{Reader: r}
	rows, err := readAligned(ar)
	if err != nil {
		return Alignment{}, err
	}
	return New(name, rows, description)
}

func readAligned(r *fasta.AlignedReader) ([]seq.Sequence, error) {
	rows, err := r.ReadAll()
	var lerr *fasta.LengthError
	if errors.As(err, &lerr) {
		return nil, &RaggedAlignmentError{
			Row:      lerr.Index,
			Name:     lerr.Name,
			Expected: lerr.Expected,
			Actual:   lerr.Actual,
		}
	}
	return rows, err
}

// WriteFasta writes an alignment to w in aligned FASTA format, wrapping
// residues at cols columns (no wrapping if cols <= 0).
func WriteFasta(w io.Writer, a Alignment, cols int) error {
	fw := fasta.NewAlignedWriter(w)
	fw.Columns = cols
	return fw.WriteAll(a.rows)
}
