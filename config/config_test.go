package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/transform"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if *c != *Default() {
		t.Fatalf("Expected defaults but got %+v", c)
	}
	if c.LineWidth != 60 {
		t.Fatalf("Default line width should be 60, got %d", c.LineWidth)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bseq.yaml")
	data := `
seq_type: protein
line_width: 70
on_invalid_record: skip
trailing_bases: fail
genetic_code: 11
translate_through_stops: true
preserve_case: true
log_level: debug
`
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if kind, _ := c.Kind(); kind != alphabet.AminoAcid {
		t.Fatalf("Expected protein but got %s", kind)
	}
	if c.LineWidth != 70 || !c.PreserveCase {
		t.Fatalf("Unexpected config: %+v", c)
	}
	if p, _ := c.ErrorPolicy(); p != fasta.SkipInvalid {
		t.Fatalf("Expected skip but got %s", p)
	}
	opts, err := c.TranslateOptions()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if opts.Table.ID != 11 || !opts.ThroughStops || opts.Trailing != transform.FailTrailing {
		t.Fatalf("Unexpected translate options: %+v", opts)
	}
	if lvl, _ := c.Level(); lvl != log.DebugLevel {
		t.Fatalf("Expected debug but got %s", lvl)
	}

	fr, err := c.Reader(strings.NewReader(">p\nmkv\n"), nil)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if fr.Kind != alphabet.AminoAcid || fr.Policy != fasta.SkipInvalid || !fr.PreserveCase {
		t.Fatalf("Reader not configured: %+v", fr)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []string{
		"seq_type: rna-protein\n",
		"on_invalid_record: ignore\n",
		"trailing_bases: pad\n",
		"genetic_code: 7\n",
		"log_level: loud\n",
		"line_width: [1, 2]\n",
	}
	dir := t.TempDir()
	for i, data := range tests {
		path := filepath.Join(dir, "bad"+string(rune('a'+i))+".yaml")
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatalf("%s", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("Expected an error for config %q", data)
		}
	}
}
