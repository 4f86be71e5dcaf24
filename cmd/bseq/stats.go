package main

import (
	"fmt"
	"strings"

	"github.com/nigevogen/bseq/alphabet"
	"github.com/nigevogen/bseq/seq"
)

// statsResult values are sent from the workers to the collector. index is
// the position of file among the arguments, so output keeps their order.
type statsResult struct {
	index int
	file  string
	lines []string
	err   error
}

type statsJob struct {
	index int
	file  string
}

// stats prints the length and composition of every record. Files are read
// by a pool of workers, but results are printed in argument order.
func (a *app) stats(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	workers := flagWorkers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan statsJob, len(files))
	results := make(chan statsResult, len(files))
	for i := 0; i < workers; i++ {
		go a.statsWorker(jobs, results)
	}
	for i, file := range files {
		jobs <- statsJob{index: i, file: file}
	}
	close(jobs)

	// Collect everything before printing, so that the first error in
	// argument order is the one reported.
	ordered := make([]statsResult, len(files))
	for range files {
		r := <-results
		ordered[r.index] = r
	}
	fmt.Fprintf(a.out, "file\tname\tlength\tcomposition\n")
	for _, r := range ordered {
		if r.err != nil {
			return fmt.Errorf("%s: %w", r.file, r.err)
		}
		for _, line := range r.lines {
			fmt.Fprintf(a.out, "%s\t%s\n", r.file, line)
		}
	}
	return nil
}

func (a *app) statsWorker(jobs <-chan statsJob, results chan<- statsResult) {
	for job := range jobs {
		var lines []string
		err := a.readFile(job.file, func(s seq.Sequence) error {
			lines = append(lines, summarize(s))
			return nil
		})
		a.logger.Debug("summarized", "file", job.file, "records", len(lines))
		results <- statsResult{
			index: job.index,
			file:  job.file,
			lines: lines,
			err:   err,
		}
	}
}

// summarize returns "name<TAB>length<TAB>composition" for s. Amino acids are
// given by their three letter names.
func summarize(s seq.Sequence) string {
	counts := s.Composition()
	parts := make([]string, 0, len(counts))
	for _, sym := range seq.SortedSymbols(counts) {
		label := sym
		if s.Kind() == alphabet.AminoAcid {
			if name, ok := alphabet.ThreeLetter(sym[0]); ok {
				label = name
			}
		}
		parts = append(parts, fmt.Sprintf("%s=%d", label, counts[sym]))
	}
	return fmt.Sprintf("%s\t%d\t%s", s.Name(), s.Len(), strings.Join(parts, " "))
}
