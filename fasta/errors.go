package fasta

import (
	"fmt"
	"strings"

	"github.com/nigevogen/bseq/bioerr"
)

type parseError string

func (e parseError) Error() string { return string(e) }

func (e parseError) Is(target error) bool { return target == bioerr.ErrParse }

var (
	// ErrEmptyFile is returned when the input does not start with a header,
	// which includes empty input.
	ErrEmptyFile = parseError("no FASTA header found")

	// ErrHeaderWithoutName is returned for a header line that has nothing
	// after the '>'.
	ErrHeaderWithoutName = parseError("FASTA header has no name")
)

// ParseError records a structural problem in FASTA input along with the line
// (starting at 1) where it was found.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == bioerr.ErrParse }

// RecordError wraps a failure to build a sequence from a FASTA record.
// Index counts records from 0 in input order, and Line is the line of the
// record's header.
type RecordError struct {
	Index int
	Line  int
	Name  string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s) on line %d: %s",
		e.Index, e.Name, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// LengthError is returned by an AlignedReader or AlignedWriter when a
// sequence does not have the same length as the sequences before it. Index
// is the position of the sequence among those read or written.
type LengthError struct {
	Index            int
	Name             string
	Expected, Actual int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sequence '%s' has length %d, but other sequences "+
		"have length %d", e.Name, e.Actual, e.Expected)
}

func (e *LengthError) Is(target error) bool { return target == bioerr.ErrShape }

// ErrorPolicy decides what a Reader does with a record that fails
// validation.
type ErrorPolicy int

const (
	// FailFast stops reading and returns the *RecordError.
	FailFast ErrorPolicy = iota

	// SkipInvalid logs the *RecordError, remembers it and moves on to the
	// next record.
	SkipInvalid
)

func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail"
	case SkipInvalid:
		return "skip"
	}
	return fmt.Sprintf("ErrorPolicy(%d)", int(p))
}

// ParseErrorPolicy converts "fail" or "skip" to an ErrorPolicy. The empty
// string means FailFast.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail", "failfast", "fail-fast":
		return FailFast, nil
	case "skip", "skipinvalid", "skip-invalid":
		return SkipInvalid, nil
	}
	return 0, fmt.Errorf("unknown record error policy %q (want fail or skip)", s)
}
