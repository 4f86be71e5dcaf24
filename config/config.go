// Package config loads the YAML settings shared by the bseq tools. A
// missing file is not an error: every setting has a default.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/gcode"
	"github.com/nigevogen/bseq/seq"
	"github.com/nigevogen/bseq/transform"
)

// DefaultPath is the file Load reads when given an empty path.
const DefaultPath = "bseq.yaml"

// Config holds the settings read from a YAML file. Fields missing from the
// file keep the values from Default.
type Config struct {
	SeqType               string `yaml:"seq_type"`
	LineWidth             int    `yaml:"line_width"`
	OnInvalidRecord       string `yaml:"on_invalid_record"`
	TrailingBases         string `yaml:"trailing_bases"`
	GeneticCode           int    `yaml:"genetic_code"`
	TranslateThroughStops bool   `yaml:"translate_through_stops"`
	PreserveCase          bool   `yaml:"preserve_case"`
	LogLevel              string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		SeqType:         alphabet.Nucleotide.String(),
		LineWidth:       seq.DefaultColumns,
		OnInvalidRecord: fasta.FailFast.String(),
		TrailingBases:   transform.DropTrailing.String(),
		GeneticCode:     gcode.Standard.ID,
		LogLevel:        "info",
	}
}

// Load reads the YAML config at path on top of the defaults. If path is
// empty, DefaultPath is tried. A file that does not exist gives the defaults;
// a file that exists but does not parse or validate is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	c := Default()
	bs, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(bs, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return err
	}
	if _, err := c.ErrorPolicy(); err != nil {
		return err
	}
	if _, err := c.TranslateOptions(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Kind parses SeqType.
func (c *Config) Kind() (alphabet.Kind, error) {
	return alphabet.ParseKind(c.SeqType)
}

// ErrorPolicy parses OnInvalidRecord.
func (c *Config) ErrorPolicy() (fasta.ErrorPolicy, error) {
	return fasta.ParseErrorPolicy(c.OnInvalidRecord)
}

// TranslateOptions builds the options for transform.Translate.
func (c *Config) TranslateOptions() (transform.TranslateOptions, error) {
	trailing, err := transform.ParseTrailingPolicy(c.TrailingBases)
	if err != nil {
		return transform.TranslateOptions{}, err
	}
	table, err := gcode.ByID(c.GeneticCode)
	if err != nil {
		return transform.TranslateOptions{}, err
	}
	return transform.TranslateOptions{
		Table:        table,
		ThroughStops: c.TranslateThroughStops,
		Trailing:     trailing,
	}, nil
}

// Level converts LogLevel to a log level. The empty string means info.
func (c *Config) Level() (log.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

// Reader returns a FASTA reader configured with the kind, record error
// policy and case handling of c.
func (c *Config) Reader(r io.Reader, logger *log.Logger) (*fasta.Reader, error) {
	kind, err := c.Kind()
	if err != nil {
		return nil, err
	}
	policy, err := c.ErrorPolicy()
	if err != nil {
		return nil, err
	}
	fr := fasta.NewReader(r, kind)
	fr.Policy = policy
	fr.PreserveCase = c.PreserveCase
	fr.Logger = logger
	return fr, nil
}
