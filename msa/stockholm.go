package msa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

// ReadStockholm reads an alignment from a Stockholm formatted file. The
// "#=GF DE" line becomes the description, and "#=GF ID" becomes the name if
// name is empty. All other features are ignored. Interleaved blocks are
// joined by row name.
//
// Residues are upper cased and '.' is read as a gap, so A2M style insert
// columns survive as ordinary columns.
func ReadStockholm(r io.Reader, kind alphabet.Kind, name string) (Alignment, error) {
	var (
		names    []string
		residues = make(map[string][]byte)
		desc     string
		lineno   int
		sawEnd   bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<26)
	for scanner.Scan() {
		lineno++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 && lineno > 1 {
			continue
		}
		if lineno == 1 {
			first := bytes.ToLower(bytes.Trim(line, " #"))
			if !bytes.Equal([]byte("stockholm 1.0"), first) {
				return Alignment{}, &StockholmError{
					Line: lineno,
					Msg:  "first line does not contain 'STOCKHOLM 1.0'",
				}
			}
			continue
		}
		if bytes.HasPrefix(line, []byte("//")) { // alignment done
			sawEnd = true
			break
		}
		if line[0] == '#' {
			if rest, ok := bytes.CutPrefix(line, []byte("#=GF")); ok {
				tag, value, _ := bytes.Cut(bytes.TrimSpace(rest), []byte(" "))
				switch string(tag) {
				case "ID":
					if name == "" {
						name = string(bytes.TrimSpace(value))
					}
				case "DE":
					desc = string(bytes.TrimSpace(value))
				}
			}
			continue
		}

		pieces := bytes.Fields(line)
		if len(pieces) != 2 {
			return Alignment{}, &StockholmError{
				Line: lineno,
				Msg:  fmt.Sprintf("expected 'name residues', got %d fields", len(pieces)),
			}
		}
		rowName := string(pieces[0])
		if _, ok := residues[rowName]; !ok {
			names = append(names, rowName)
		}
		residues[rowName] = append(residues[rowName], asResidues(pieces[1])...)
	}
	if err := scanner.Err(); err != nil {
		return Alignment{}, err
	}
	if lineno == 0 {
		return Alignment{}, &StockholmError{Line: 0, Msg: "empty input"}
	}
	if !sawEnd {
		return Alignment{}, &StockholmError{Line: lineno, Msg: "missing '//' terminator"}
	}

	rows := make([]seq.Sequence, len(names))
	for i, n := range names {
		s, err := seq.New(n, residues[n], kind, "")
		if err != nil {
			return Alignment{}, fmt.Errorf("row %d (%s): %w", i, n, err)
		}
		rows[i] = s
	}
	return New(name, rows, desc)
}

func asResidues(bs []byte) []byte {
	rs := make([]byte, len(bs))
	for i, b := range bs {
		switch {
		case b >= 'a' && b <= 'z':
			rs[i] = b - ('a' - 'A')
		case b == '.':
			rs[i] = alphabet.Gap
		default:
			rs[i] = b
		}
	}
	return rs
}

// WriteStockholm writes the given alignment to the writer in the Stockholm
// format. Other than the alignment's name and description, no features are
// written. Row names are padded so that residues line up.
func WriteStockholm(w io.Writer, a Alignment) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	width := 0
	for _, row := range a.rows {
		if len(row.Name()) > width {
			width = len(row.Name())
		}
	}
	pf("# STOCKHOLM 1.0\n")
	if a.name != "" {
		pf("#=GF ID %s\n", a.name)
	}
	if a.description != "" {
		pf("#=GF DE %s\n", a.description)
	}
	for _, row := range a.rows {
		pf("%-*s %s\n", width, row.Name(), row.String())
	}
	pf("//\n")
	return err
}
