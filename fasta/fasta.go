package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

type state int

const (
	expectHeaderOrEOF state = iota
	accumulatingSequence
)

// A Reader reads sequences from FASTA encoded input.
//
// The exported fields may be changed at any time before or between calls to
// Read.
type Reader struct {
	// Kind is the alphabet every record is validated against.
	Kind alphabet.Kind

	// Policy decides what happens to records that fail validation.
	// The default is FailFast.
	Policy ErrorPolicy

	// When set, residues are not upper cased before validation.
	PreserveCase bool

	// Logger receives a warning for every skipped record. When nil,
	// log.Default() is used.
	Logger *log.Logger

	buf   *bufio.Reader
	line  int
	state state

	records    int
	name, desc string
	headerLine int
	residues   []byte

	skipped []*RecordError
	done    bool
	err     error
}

// NewReader returns a reader of sequences of the given kind.
func NewReader(r io.Reader, kind alphabet.Kind) *Reader {
	return &Reader{
		Kind:     kind,
		Policy:   FailFast,
		buf:      bufio.NewReader(r),
		state:    expectHeaderOrEOF,
		residues: make([]byte, 0, 128),
	}
}

// ReadSequences parses all of the records in text. It is a shortcut for
// NewReader(strings.NewReader(text), kind).ReadAll().
func ReadSequences(text string, kind alphabet.Kind) ([]seq.Sequence, error) {
	return NewReader(strings.NewReader(text), kind).ReadAll()
}

// ReadAll will read all sequences in the FASTA input and return them as a
// slice. If an error is encountered, processing is stopped, and the error is
// returned along with no sequences.
func (r *Reader) ReadAll() ([]seq.Sequence, error) {
	seqs := make([]seq.Sequence, 0, 16)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Read returns the next sequence in the input, or io.EOF when there are no
// more.
//
// Structural problems are returned as a *ParseError and end the read: every
// later call returns the same error. A record that fails validation is
// returned as a *RecordError under the FailFast policy; under SkipInvalid it
// is logged and reading continues with the next record.
//
// Input is consumed one line at a time, so files of any size may be read
// with memory proportional to the largest record.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (seq.Sequence, error) {
	for {
		s, err := r.next()
		if err == nil {
			return s, nil
		}
		var rerr *RecordError
		if r.Policy == SkipInvalid && errors.As(err, &rerr) {
			r.skip(rerr)
			continue
		}
		return seq.Sequence{}, err
	}
}

// Skipped returns the records dropped so far under the SkipInvalid policy.
func (r *Reader) Skipped() []*RecordError {
	return append([]*RecordError(nil), r.skipped...)
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) skip(rerr *RecordError) {
	r.skipped = append(r.skipped, rerr)
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn("skipping invalid FASTA record",
		"record", rerr.Index, "name", rerr.Name, "line", rerr.Line,
		"err", rerr.Err)
}

func (r *Reader) next() (seq.Sequence, error) {
	if r.err != nil {
		return seq.Sequence{}, r.err
	}
	if r.done {
		return seq.Sequence{}, io.EOF
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return seq.Sequence{}, r.fail(err)
		}
		eof := err == io.EOF
		if len(line) > 0 {
			r.line++
			s, ok, ferr := r.feed(line)
			if ferr != nil || ok {
				return s, ferr
			}
		}
		if eof {
			r.done = true
			return r.finish()
		}
	}
}

// feed advances the state machine by one line. The bool is true when the
// line completed a record.
func (r *Reader) feed(line []byte) (seq.Sequence, bool, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return seq.Sequence{}, false, nil
	}
	switch r.state {
	case expectHeaderOrEOF:
		if line[0] != '>' {
			return seq.Sequence{}, false,
				r.fail(&ParseError{Line: r.line, Err: ErrEmptyFile})
		}
		if err := r.begin(line); err != nil {
			return seq.Sequence{}, false, err
		}
		r.state = accumulatingSequence
		return seq.Sequence{}, false, nil
	case accumulatingSequence:
		if line[0] == '>' {
			name, desc := parseHeader(line)
			if len(name) == 0 {
				return seq.Sequence{}, false,
					r.fail(&ParseError{Line: r.line, Err: ErrHeaderWithoutName})
			}
			s, err := r.finalize()
			r.start(name, desc)
			return s, true, err
		}
		if !r.PreserveCase {
			upperInPlace(line)
		}
		r.residues = append(r.residues, line...)
	}
	return seq.Sequence{}, false, nil
}

func (r *Reader) finish() (seq.Sequence, error) {
	switch r.state {
	case expectHeaderOrEOF:
		if r.records == 0 {
			return seq.Sequence{}, r.fail(&ParseError{Line: r.line, Err: ErrEmptyFile})
		}
		return seq.Sequence{}, io.EOF
	default:
		r.state = expectHeaderOrEOF
		return r.finalize()
	}
}

func (r *Reader) begin(header []byte) error {
	name, desc := parseHeader(header)
	if len(name) == 0 {
		return r.fail(&ParseError{Line: r.line, Err: ErrHeaderWithoutName})
	}
	r.start(name, desc)
	return nil
}

func (r *Reader) start(name, desc string) {
	r.records++
	r.name, r.desc = name, desc
	r.headerLine = r.line
	r.residues = r.residues[:0]
}

func (r *Reader) finalize() (seq.Sequence, error) {
	s, err := seq.New(r.name, r.residues, r.Kind, r.desc)
	if err != nil {
		return seq.Sequence{}, &RecordError{
			Index: r.records - 1,
			Line:  r.headerLine,
			Name:  r.name,
			Err:   err,
		}
	}
	return s, nil
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// parseHeader splits a trimmed header line into its name and description.
// The name ends at the first character seq.IsNameBreak accepts.
func parseHeader(line []byte) (name, desc string) {
	hdr := bytes.TrimSpace(line[1:])
	if i := bytes.IndexFunc(hdr, seq.IsNameBreak); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i:]))
	}
	return string(hdr), ""
}

func upperInPlace(bs []byte) {
	for i, b := range bs {
		if b >= 'a' && b <= 'z' {
			bs[i] = b - ('a' - 'A')
		}
	}
}

// An AlignedReader reads sequences that must all have the same length, as
// in an aligned FASTA file. The length check is done as each sequence is
// read, so a bad file is rejected at the first offending record.
//
// An AlignedReader may also be built around an existing Reader with
// &AlignedReader{Reader: r}.
type AlignedReader struct {
	*Reader
	n      int
	seqLen int
}

// NewAlignedReader creates a new aligned FASTA reader. See the exported
// fields of Reader for options that can be set.
func NewAlignedReader(r io.Reader, kind alphabet.Kind) *AlignedReader {
	return &AlignedReader{Reader: NewReader(r, kind)}
}

// Read returns the next sequence, or a *LengthError if its length differs
// from the length of the first sequence.
func (r *AlignedReader) Read() (seq.Sequence, error) {
	s, err := r.Reader.Read()
	if err != nil {
		return seq.Sequence{}, err
	}
	if r.n == 0 {
		r.seqLen = s.Len()
	} else if r.seqLen != s.Len() {
		return seq.Sequence{}, &LengthError{
			Index:    r.n,
			Name:     s.Name(),
			Expected: r.seqLen,
			Actual:   s.Len(),
		}
	}
	r.n++
	return s, nil
}

// ReadAll reads every remaining sequence. See ReadAll on Reader.
func (r *AlignedReader) ReadAll() ([]seq.Sequence, error) {
	seqs := make([]seq.Sequence, 0, 16)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// A Writer writes sequences to a FASTA encoded file.
//
// The header text is never wrapped.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. A value <= 0 will result in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that can write sequences to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: seq.DefaultColumns,
		buf:     bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single FASTA record to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(s seq.Sequence) error {
	_, err := w.buf.WriteString(s.FastaFormat(w.Columns))
	return err
}

// WriteAll writes a slice of sequences to the underlying io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(seqs []seq.Sequence) error {
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}

// An AlignedWriter writes sequences to an aligned FASTA encoded file.
//
// See the exported fields of Writer for options that can be set.
type AlignedWriter struct {
	*Writer
	n      int
	seqLen int
}

// NewAlignedWriter creates a new aligned FASTA writer that can write
// sequences to an io.Writer.
func NewAlignedWriter(w io.Writer) *AlignedWriter {
	return &AlignedWriter{
		Writer: NewWriter(w),
		seqLen: -1,
	}
}

// Write writes a single aligned sequence to the underlying io.Writer.
//
// A *LengthError is returned if the length of the sequence is not the same
// as the length of sequences that have already been written.
func (w *AlignedWriter) Write(s seq.Sequence) error {
	if w.seqLen == -1 {
		w.seqLen = s.Len()
	} else if w.seqLen != s.Len() {
		return &LengthError{
			Index:    w.n,
			Name:     s.Name(),
			Expected: w.seqLen,
			Actual:   s.Len(),
		}
	}
	w.n++
	return w.Writer.Write(s)
}

// WriteAll writes a slice of aligned sequences to the underlying io.Writer,
// and calls Flush.
func (w *AlignedWriter) WriteAll(seqs []seq.Sequence) error {
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}
