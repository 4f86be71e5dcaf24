// Command bseq formats, converts and summarizes FASTA files.
//
// Usage:
//
//	bseq [flags] command fasta-file [ fasta-file ... ]
//
// where command is one of fmt, revcomp, translate, consensus, stats or codons.
// The path "-" reads standard input. Settings are read from a YAML file (see
// -config) and flags given on the command line override them.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/config"
	"github.com/nigevogen/bseq/fasta"
	"github.com/nigevogen/bseq/gcode"
	"github.com/nigevogen/bseq/interop"
	"github.com/nigevogen/bseq/msa"
	"github.com/nigevogen/bseq/seq"
	"github.com/nigevogen/bseq/transform"
)

var (
	flagConfig       = ""
	flagType         = ""
	flagWidth        = 0
	flagCode         = 0
	flagThroughStops = false
	flagSkipInvalid  = false
	flagVerbose      = false
	flagWorkers      = runtime.NumCPU()
	flagBiogo        = false
)

var commands = map[string]func(*app, []string) error{
	"fmt":       (*app).format,
	"revcomp":   (*app).revcomp,
	"translate": (*app).translate,
	"consensus": (*app).consensus,
	"stats":     (*app).stats,
	"codons":    (*app).codons,
}

func init() {
	flag.StringVar(&flagConfig, "config", flagConfig,
		"Path to a YAML config file. Defaults to ./"+config.DefaultPath+
			" when it exists.")
	flag.StringVar(&flagType, "type", flagType,
		"The sequence type: nucleotide, protein or codon.")
	flag.IntVar(&flagWidth, "width", flagWidth,
		"The number of residues per FASTA line. 0 disables wrapping.")
	flag.IntVar(&flagCode, "code", flagCode,
		"The NCBI genetic code used by translate and codons.")
	flag.BoolVar(&flagThroughStops, "through-stops", flagThroughStops,
		"When set, translate continues past stop codons.")
	flag.BoolVar(&flagSkipInvalid, "skip-invalid", flagSkipInvalid,
		"When set, invalid records are logged and skipped instead of "+
			"stopping the program.")
	flag.BoolVar(&flagVerbose, "v", flagVerbose,
		"Enable debug logging.")
	flag.IntVar(&flagWorkers, "workers", flagWorkers,
		"The number of files summarized at once by stats.")
	flag.BoolVar(&flagBiogo, "biogo", flagBiogo,
		"When set, fmt reads its input with biogo's FASTA reader. The first "+
			"invalid record always stops the program.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] command fasta-file [ fasta-file ... ]\n",
		path.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "\nCommands: fmt, revcomp, translate, consensus, "+
		"stats, codons\n\n")
	flag.PrintDefaults()
	os.Exit(1)
}

// app carries the settings and output shared by every command.
type app struct {
	conf     *config.Config
	logger   *log.Logger
	out      *bufio.Writer
	viaBiogo bool
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}
	logger := log.New(os.Stderr)
	logger.SetPrefix(path.Base(os.Args[0]))

	conf, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}
	level, _ := conf.Level()
	if flagVerbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	logger.Debug("settings", "type", conf.SeqType, "width", conf.LineWidth,
		"code", conf.GeneticCode, "on_invalid_record", conf.OnInvalidRecord)

	name := flag.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		logger.Error("unknown command", "command", name)
		flag.Usage()
	}

	a := &app{
		conf:     conf,
		logger:   logger,
		out:      bufio.NewWriter(os.Stdout),
		viaBiogo: flagBiogo,
	}
	err = cmd(a, flag.Args()[1:])
	if ferr := a.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		logger.Fatal(name+" failed", "err", err)
	}
}

// loadConfig reads the config file and applies the flags that were given
// explicitly on top of it.
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			conf.SeqType = flagType
		case "width":
			conf.LineWidth = flagWidth
		case "code":
			conf.GeneticCode = flagCode
		case "through-stops":
			conf.TranslateThroughStops = flagThroughStops
		case "skip-invalid":
			if flagSkipInvalid {
				conf.OnInvalidRecord = fasta.SkipInvalid.String()
			} else {
				conf.OnInvalidRecord = fasta.FailFast.String()
			}
		}
	})
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// eachRecord calls fun on every record of every file, in order.
func (a *app) eachRecord(files []string, fun func(seq.Sequence) error) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	for _, file := range files {
		if err := a.readFile(file, fun); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func (a *app) readFile(file string, fun func(seq.Sequence) error) error {
	f, err := fasta.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := a.conf.Reader(f, a.logger)
	if err != nil {
		return err
	}
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := fun(s); err != nil {
			return err
		}
	}
	if n := len(r.Skipped()); n > 0 {
		a.logger.Warn("skipped invalid records", "file", file, "count", n)
	}
	return nil
}

func (a *app) writer() *fasta.Writer {
	w := fasta.NewWriter(a.out)
	w.Columns = a.conf.LineWidth
	return w
}

func (a *app) format(files []string) error {
	w := a.writer()
	if a.viaBiogo {
		return a.eachFileBiogo(files, w.Write)
	}
	return a.eachRecord(files, w.Write)
}

// eachFileBiogo is eachRecord with biogo doing the parsing.
func (a *app) eachFileBiogo(files []string, fun func(seq.Sequence) error) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	kind, err := a.conf.Kind()
	if err != nil {
		return err
	}
	for _, file := range files {
		seqs, err := readFileBiogo(file, kind)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		a.logger.Debug("read with biogo", "file", file, "records", len(seqs))
		for _, s := range seqs {
			if err := fun(s); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
	}
	return nil
}

func readFileBiogo(file string, kind alphabet.Kind) ([]seq.Sequence, error) {
	f, err := fasta.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return interop.ReadFasta(f, kind)
}

func (a *app) revcomp(files []string) error {
	w := a.writer()
	return a.eachRecord(files, func(s seq.Sequence) error {
		rc := transform.ReverseComplement
		if bytes.IndexByte(s.Residues(), 'U') >= 0 {
			rc = transform.ReverseComplementRNA
		}
		r, err := rc(s)
		if err != nil {
			return err
		}
		return w.Write(r)
	})
}

func (a *app) translate(files []string) error {
	opts, err := a.conf.TranslateOptions()
	if err != nil {
		return err
	}
	w := a.writer()
	return a.eachRecord(files, func(s seq.Sequence) error {
		p, err := transform.Translate(s, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		return w.Write(p)
	})
}

func (a *app) consensus(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	w := a.writer()
	for _, file := range files {
		aln, err := a.readAlignment(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		a.logger.Debug("read alignment", "file", file,
			"rows", aln.NumRows(), "columns", aln.NumColumns())
		cons, err := transform.Consensus(aln)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := w.Write(cons); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) readAlignment(file string) (msa.Alignment, error) {
	f, err := fasta.Open(file)
	if err != nil {
		return msa.Alignment{}, err
	}
	defer f.Close()

	r, err := a.conf.Reader(f, a.logger)
	if err != nil {
		return msa.Alignment{}, err
	}
	name := strings.TrimSuffix(path.Base(file), path.Ext(file))
	if file == "-" {
		name = "stdin"
	}
	return msa.ReadFastaFrom(r, name, "")
}

func (a *app) codons(args []string) error {
	opts, err := a.conf.TranslateOptions()
	if err != nil {
		return err
	}
	table := opts.Table
	if table == nil {
		table = gcode.Standard
	}
	fmt.Fprintf(a.out, "# genetic code %s\n", table)
	for _, c := range table.Codons() {
		name, _ := alphabet.ThreeLetter(c.AminoAcid)
		start := ""
		if c.Start {
			start = "start"
		}
		fmt.Fprintf(a.out, "%s\t%c\t%s\t%s\n", c.Codon, c.AminoAcid, name, start)
	}
	return nil
}
