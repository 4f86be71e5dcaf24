package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.fh.Close(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

// Open opens the FASTA file at path for reading. The path "-" is standard
// input. Files starting with the gzip magic number, or whose name ends in
// ".gz", are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) ||
		strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, fh: fh}, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{br, fh}, nil
}

// ReadFile reads every record of the FASTA file at path. See Open.
func ReadFile(path string, kind alphabet.Kind) ([]seq.Sequence, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewReader(f, kind).ReadAll()
}
