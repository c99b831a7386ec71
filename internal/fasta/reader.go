// Package fasta reads per-chromosome multi-FASTA files into lists of raw,
// lowercased sequences.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Extension is appended to the chromosome name to form the file name.
const Extension = ".fa"

// Parse reads every record from r. Sequence lines are concatenated and
// lowercased byte by byte; a record is kept only when it has at least one base. Lines
// before the first header belong to no record and are ignored.
func Parse(r io.Reader) ([]string, error) {
	seqs := make([]string, 0)
	br := bufio.NewReader(r)

	var current strings.Builder
	inRecord := false

	flush := func() {
		if current.Len() > 0 {
			seqs = append(seqs, current.String())
			current.Reset()
		}
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading fasta: %w", err)
		}
		eof := err == io.EOF

		line = strings.TrimRight(line, "\r\n")
		if len(line) > 0 && line[0] == '>' {
			flush()
			inRecord = true
		} else if inRecord && len(line) > 0 {
			writeLower(&current, line)
		}

		if eof {
			break
		}
	}
	flush()

	return seqs, nil
}

// writeLower appends line to b with ASCII letters lowercased. Other bytes,
// including those outside ASCII, are copied as they are.
func writeLower(b *strings.Builder, line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// ChromosomeNames lists autosomes chr1..chrN followed by the allosomes in
// the given order.
func ChromosomeNames(numAutosomes int, allosomes []string) []string {
	names := make([]string, 0, max(numAutosomes, 0)+len(allosomes))
	for i := 1; i <= numAutosomes; i++ {
		names = append(names, "chr"+strconv.Itoa(i))
	}
	for _, a := range allosomes {
		names = append(names, "chr"+a)
	}
	return names
}

// Chromosome holds the sequences read for one chromosome. Err is set, and
// Sequences left empty, when the file could not be read.
type Chromosome struct {
	Name      string
	Path      string
	Sequences []string
	Err       error
}

// Reader reads the chromosome files of one directory.
type Reader struct {
	Dir    string
	Logger logrus.FieldLogger
	// Workers bounds the number of files read at once. Values below 2 read
	// sequentially.
	Workers int
	// OnChromosome, when set, is called after each chromosome is read.
	OnChromosome func(Chromosome)

	mu sync.Mutex
}

// NewReader returns a sequential reader for dir logging to the standard
// logrus logger.
func NewReader(dir string) *Reader {
	return &Reader{Dir: dir, Logger: logrus.StandardLogger()}
}

// ReadChromosomes reads chr1..chrN and then each allosome, in that order.
// A file that cannot be read yields an empty sequence list and a warning;
// the remaining chromosomes are still read.
func (r *Reader) ReadChromosomes(numAutosomes int, allosomes []string) []Chromosome {
	names := ChromosomeNames(numAutosomes, allosomes)
	out := make([]Chromosome, len(names))

	if r.Workers < 2 || len(names) < 2 {
		for i, name := range names {
			out[i] = r.readOne(name)
		}
		return out
	}

	sem := make(chan struct{}, r.Workers)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = r.readOne(name)
		}(i, name)
	}
	wg.Wait()

	return out
}

func (r *Reader) readOne(name string) Chromosome {
	path := filepath.Join(r.Dir, name+Extension)
	c := Chromosome{Name: name, Path: path, Sequences: []string{}}

	seqs, err := ReadFile(path)
	if err != nil {
		c.Err = &ReadWarning{Chromosome: name, Path: path, Err: err}
		r.logger().WithFields(logrus.Fields{
			"chromosome": name,
			"path":       path,
		}).Warnf("could not read fasta file: %v", err)
	} else {
		c.Sequences = seqs
		r.logger().WithFields(logrus.Fields{
			"chromosome": name,
			"sequences":  len(seqs),
		}).Debug("read fasta file")
	}

	if r.OnChromosome != nil {
		r.mu.Lock()
		r.OnChromosome(c)
		r.mu.Unlock()
	}
	return c
}

func (r *Reader) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}

// Sequences returns the per-chromosome sequence lists in chromosome order.
func Sequences(chrs []Chromosome) [][]string {
	out := make([][]string, len(chrs))
	for i, c := range chrs {
		out[i] = c.Sequences
	}
	return out
}

// Warnings returns the errors of the chromosomes that could not be read.
func Warnings(chrs []Chromosome) []error {
	var errs []error
	for _, c := range chrs {
		if c.Err != nil {
			errs = append(errs, c.Err)
		}
	}
	return errs
}

// ReadWarning reports a chromosome file that could not be read.
type ReadWarning struct {
	Chromosome string
	Path       string
	Err        error
}

func (w *ReadWarning) Error() string {
	return fmt.Sprintf("%s: could not read %s: %v", w.Chromosome, w.Path, w.Err)
}

func (w *ReadWarning) Unwrap() error {
	return w.Err
}
