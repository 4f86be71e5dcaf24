package main

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/bioerr"
	"github.com/nigevogen/bseq/config"
	"github.com/nigevogen/bseq/seq"
)

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return &app{
		conf:   config.Default(),
		logger: log.New(new(bytes.Buffer)),
		out:    bufio.NewWriter(out),
	}, out
}

func writeFile(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	return path
}

func run(t *testing.T, a *app, out *bytes.Buffer, cmd string, args ...string) string {
	if err := commands[cmd](a, args); err != nil {
		t.Fatalf("%s: %s", cmd, err)
	}
	if err := a.out.Flush(); err != nil {
		t.Fatalf("%s", err)
	}
	return out.String()
}

func TestRevcompAndTranslate(t *testing.T) {
	file := writeFile(t, "ex.fa", ">s1 example\ngattaca\n")

	a, out := testApp(t)
	if got := run(t, a, out, "revcomp", file); got != ">s1 example\nTGTAATC\n" {
		t.Fatalf("Unexpected revcomp output:\n%s", got)
	}

	a, out = testApp(t)
	if got := run(t, a, out, "translate", file); got != ">s1 example\nDY\n" {
		t.Fatalf("Unexpected translate output:\n%s", got)
	}
}

func TestFormat(t *testing.T) {
	file := writeFile(t, "ex.fa", ">s1\nGATT\nACA\n")
	a, out := testApp(t)
	a.conf.LineWidth = 3
	if got := run(t, a, out, "fmt", file); got != ">s1\nGAT\nTAC\nA\n" {
		t.Fatalf("Unexpected fmt output:\n%s", got)
	}
}

func TestFormatViaBiogo(t *testing.T) {
	file := writeFile(t, "ex.fa", ">s1 first sequence\nGATT\nACA\n>s2\nGG\n")
	a, out := testApp(t)
	a.conf.LineWidth = 3
	a.viaBiogo = true
	want := ">s1 first sequence\nGAT\nTAC\nA\n>s2\nGG\n"
	if got := run(t, a, out, "fmt", file); got != want {
		t.Fatalf("Unexpected fmt output:\n%s", got)
	}

	bad := writeFile(t, "bad.fa", ">ok\nACGT\n>bad\nACJT\n")
	a, _ = testApp(t)
	a.viaBiogo = true
	if err := a.format([]string{bad}); err == nil {
		t.Fatalf("Expected an error for an invalid record")
	}
}

func TestRevcompRNA(t *testing.T) {
	file := writeFile(t, "ex.fa", ">r\nUUC\n>d\nGATTACA\n")
	a, out := testApp(t)
	if got := run(t, a, out, "revcomp", file); got != ">r\nGAA\n>d\nTGTAATC\n" {
		t.Fatalf("Unexpected revcomp output:\n%s", got)
	}

	mixed := writeFile(t, "mixed.fa", ">m\nACGTU\n")
	a, _ = testApp(t)
	if err := a.revcomp([]string{mixed}); !errors.Is(err, bioerr.ErrDomain) {
		t.Fatalf("Expected a domain error but got %v", err)
	}
}

func TestConsensus(t *testing.T) {
	file := writeFile(t, "ex.fa", ">s1\nGATTACA\n>s2\nGATCACA\n")
	a, out := testApp(t)
	if got := run(t, a, out, "consensus", file); got != ">ex_consensus\nGATCACA\n" {
		t.Fatalf("Unexpected consensus output:\n%s", got)
	}

	ragged := writeFile(t, "ragged.fa", ">s1\nGATTACA\n>s2\nGAT\n")
	a, _ = testApp(t)
	if err := a.consensus([]string{ragged}); err == nil {
		t.Fatalf("Expected an error for a ragged alignment")
	}
}

func TestSkipInvalid(t *testing.T) {
	file := writeFile(t, "ex.fa", ">ok\nACGT\n>bad\nACJT\n")
	a, _ := testApp(t)
	if err := a.format([]string{file}); err == nil {
		t.Fatalf("Expected an error for an invalid record")
	}

	a, out := testApp(t)
	a.conf.OnInvalidRecord = "skip"
	if got := run(t, a, out, "fmt", file); got != ">ok\nACGT\n" {
		t.Fatalf("Unexpected output:\n%s", got)
	}
}

func TestStats(t *testing.T) {
	f1 := writeFile(t, "a.fa", ">s1\nGATTACA\n")
	f2 := writeFile(t, "b.fa", ">s2\nGG\n>s3\nC\n")
	a, out := testApp(t)
	got := run(t, a, out, "stats", f1, f2)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected a header and 3 lines but got:\n%s", got)
	}
	if lines[1] != f1+"\ts1\t7\tA=3 C=1 G=1 T=2" {
		t.Fatalf("Unexpected stats line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], f2+"\ts3\t1") {
		t.Fatalf("Stats are not in argument order: %q", lines[3])
	}
}

func TestSummarizeProtein(t *testing.T) {
	s := seq.MustNew("p", "MKM", alphabet.AminoAcid, "")
	if got := summarize(s); got != "p\t3\tLys=1 Met=2" {
		t.Fatalf("Unexpected summary: %q", got)
	}
}

func TestCodons(t *testing.T) {
	a, out := testApp(t)
	got := run(t, a, out, "codons")
	if !strings.Contains(got, "ATG\tM\tMet\tstart\n") {
		t.Fatalf("Missing ATG in codon listing:\n%s", got)
	}
	if strings.Count(got, "\n") != 65 {
		t.Fatalf("Expected a header and 64 codons")
	}
}
