package msa

import (
	"fmt"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/bioerr"
)

type shapeError string

func (e shapeError) Error() string { return string(e) }

func (e shapeError) Is(target error) bool { return target == bioerr.ErrShape }

// ErrEmptyAlignment is returned when an alignment would have no rows.
var ErrEmptyAlignment = shapeError("alignment has no rows")

// MixedAlphabetError is returned when a row's kind differs from the first
// row's kind.
type MixedAlphabetError struct {
	Row       int
	Want, Got alphabet.Kind
}

func (e *MixedAlphabetError) Error() string {
	return fmt.Sprintf("row %d is a %s sequence, but other rows are %s",
		e.Row, e.Got, e.Want)
}

func (e *MixedAlphabetError) Is(target error) bool { return target == bioerr.ErrShape }

// RaggedAlignmentError is returned when a row's length differs from the first
// row's length.
type RaggedAlignmentError struct {
	Row              int
	Name             string
	Expected, Actual int
}

func (e *RaggedAlignmentError) Error() string {
	return fmt.Sprintf("row %d ('%s') has length %d, but other rows have "+
		"length %d", e.Row, e.Name, e.Actual, e.Expected)
}

func (e *RaggedAlignmentError) Is(target error) bool { return target == bioerr.ErrShape }

// DuplicateRowError is returned when two rows share a name, which would make
// lookups by name ambiguous.
type DuplicateRowError struct {
	Row  int
	Name string
}

func (e *DuplicateRowError) Error() string {
	return fmt.Sprintf("row %d: duplicate row name '%s'", e.Row, e.Name)
}

func (e *DuplicateRowError) Is(target error) bool { return target == bioerr.ErrShape }

// IndexError reports a column index outside of [0, Len).
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("column %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == bioerr.ErrIndex }

// NotFoundError reports a row name that is not in the alignment.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no row named '%s'", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == bioerr.ErrNotFound }

// MarkerLengthError is returned when a marker does not cover every column of
// the alignment or string it is applied to.
type MarkerLengthError struct {
	Marker           string
	Expected, Actual int
}

func (e *MarkerLengthError) Error() string {
	return fmt.Sprintf("marker '%s' has length %d, expected %d",
		e.Marker, e.Actual, e.Expected)
}

func (e *MarkerLengthError) Is(target error) bool { return target == bioerr.ErrShape }

// InvalidMarkerError is returned for a marker track with a character that is
// not in the marker's legend, or for a malformed encoded marker.
type InvalidMarkerError struct {
	Pos  int
	Char byte
	Msg  string
}

func (e *InvalidMarkerError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid marker at %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("invalid marker character '%c' at %d", e.Char, e.Pos)
}

func (e *InvalidMarkerError) Is(target error) bool { return target == bioerr.ErrValidation }

// StockholmError reports malformed Stockholm input.
type StockholmError struct {
	Line int
	Msg  string
}

func (e *StockholmError) Error() string {
	return fmt.Sprintf("stockholm line %d: %s", e.Line, e.Msg)
}

func (e *StockholmError) Is(target error) bool { return target == bioerr.ErrParse }
