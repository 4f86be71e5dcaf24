package seq

import (
	"errors"
	"fmt"

	"github.com/nigevogen/bseq/bioerr"
)

// ErrEmptyName is returned by New when the name is the empty string.
var ErrEmptyName = validationError("sequence name is empty")

type validationError string

func (e validationError) Error() string { return string(e) }

func (e validationError) Is(target error) bool { return target == bioerr.ErrValidation }

// InvalidNameError is returned when a name contains a character that cannot
// survive a round trip through a FASTA header.
type InvalidNameError struct {
	Name string
	Char rune
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("sequence name %q contains invalid character %q",
		e.Name, e.Char)
}

func (e *InvalidNameError) Is(target error) bool { return target == bioerr.ErrValidation }

// InvalidDescriptionError is returned when a description contains a line
// break, which would split the FASTA header.
type InvalidDescriptionError struct {
	Description string
	Char        byte
}

func (e *InvalidDescriptionError) Error() string {
	return fmt.Sprintf("sequence description %q contains a line break %q",
		e.Description, e.Char)
}

func (e *InvalidDescriptionError) Is(target error) bool { return target == bioerr.ErrValidation }

// InvalidSymbolError is returned when a residue (or a codon, for codon
// sequences) is not in the alphabet. Pos is measured in symbols.
type InvalidSymbolError struct {
	Pos    int
	Symbol string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Pos)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == bioerr.ErrValidation }

// RaggedCodonError is returned when a codon sequence has a number of
// characters that is not a multiple of 3.
type RaggedCodonError struct {
	Len int
}

func (e *RaggedCodonError) Error() string {
	return fmt.Sprintf("codon sequence length %d is not a multiple of 3", e.Len)
}

func (e *RaggedCodonError) Is(target error) bool { return target == bioerr.ErrValidation }

// IndexError is returned for an out of range slice.
type IndexError struct {
	Start, End, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("slice [%d:%d] out of range for sequence of length %d",
		e.Start, e.End, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == bioerr.ErrIndex }

// IsValidation reports whether err is a sequence validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, bioerr.ErrValidation)
}
