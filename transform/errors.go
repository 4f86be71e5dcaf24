package transform

import (
	"fmt"
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/bioerr"
)

// TypeMismatchError is returned when an operation is given a sequence of a
// kind it does not apply to, like the reverse complement of a protein.
type TypeMismatchError struct {
	Op   string
	Kind alphabet.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: not defined for %s sequences", e.Op, e.Kind)
}

func (e *TypeMismatchError) Is(target error) bool { return target == bioerr.ErrDomain }

// MixedNucleotideError is returned when a reverse complement meets a base
// of the other nucleic acid: 'U' in DNA or 'T' in RNA. Pos is its index.
type MixedNucleotideError struct {
	Name string
	Pos  int
	RNA  bool
}

func (e *MixedNucleotideError) Error() string {
	if e.RNA {
		return fmt.Sprintf("sequence %q has a 'T' at %d, which is not an RNA base",
			e.Name, e.Pos)
	}
	return fmt.Sprintf("sequence %q has a 'U' at %d, which is not a DNA base "+
		"(use the RNA reverse complement)", e.Name, e.Pos)
}

func (e *MixedNucleotideError) Is(target error) bool { return target == bioerr.ErrDomain }

// IncompleteCodonError is returned by Translate under FailTrailing when the
// bases to translate are not a multiple of 3. Len is the number of bases.
type IncompleteCodonError struct {
	Len int
}

func (e *IncompleteCodonError) Error() string {
	return fmt.Sprintf("%d bases leave an incomplete trailing codon of %d",
		e.Len, e.Len%3)
}

func (e *IncompleteCodonError) Is(target error) bool { return target == bioerr.ErrDomain }

// FrameError is returned for a reading frame outside of 0, 1 and 2.
type FrameError struct {
	Frame int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("reading frame %d is not one of 0, 1 or 2", e.Frame)
}

func (e *FrameError) Is(target error) bool { return target == bioerr.ErrDomain }

// TrailingPolicy decides what Translate does with 1 or 2 bases left over
// after the last complete codon.
type TrailingPolicy int

const (
	// DropTrailing ignores the leftover bases.
	DropTrailing TrailingPolicy = iota

	// FailTrailing returns an *IncompleteCodonError.
	FailTrailing
)

func (p TrailingPolicy) String() string {
	switch p {
	case DropTrailing:
		return "drop"
	case FailTrailing:
		return "fail"
	}
	return fmt.Sprintf("TrailingPolicy(%d)", int(p))
}

// ParseTrailingPolicy converts "drop" or "fail" to a TrailingPolicy. The
// empty string means DropTrailing.
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropTrailing, nil
	case "fail":
		return FailTrailing, nil
	}
	return 0, fmt.Errorf("unknown trailing bases policy %q (want drop or fail)", s)
}
