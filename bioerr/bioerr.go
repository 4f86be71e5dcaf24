/*
Package bioerr defines the error categories shared by the bseq packages.

Every concrete error type in this module matches exactly one of the
categories below with errors.Is, so callers can branch on the kind of
failure without knowing the concrete type:

	if errors.Is(err, bioerr.ErrShape) {
		...
	}
*/
package bioerr

import "errors"

var (
	// ErrValidation covers bad symbols, empty or malformed names and ragged
	// codon lengths.
	ErrValidation = errors.New("validation error")

	// ErrShape covers empty, ragged or mixed-alphabet alignments.
	ErrShape = errors.New("shape error")

	// ErrParse covers malformed FASTA structure.
	ErrParse = errors.New("parse error")

	// ErrDomain covers invalid codons and operations applied to the wrong
	// kind of sequence.
	ErrDomain = errors.New("domain error")

	// ErrIndex is returned for out of range positions and slices.
	ErrIndex = errors.New("index out of range")

	// ErrNotFound is returned when a named entity does not exist.
	ErrNotFound = errors.New("not found")
)
