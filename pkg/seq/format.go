// 15 Feb 2025

package seq

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	. "github.com/andrew-torda/neff/pkg/seq/common"
)

var (
	ErrFormat = errors.New("unsupported alignment format")
	ErrNoSeqs = errors.New("no sequences found")
)

type reader func(io.Reader, *Options) ([]seq, error)
type writer func(io.Writer, []seq) error

type format struct {
	rd  reader
	wrt writer
}

// fastaNames are the extensions we treat as plain fasta.
var fastaNames = []string{"fasta", "fas", "fa", "afa", "fst"}

var formats = map[string]format{
	"a2m":     {rd: func(r io.Reader, _ *Options) ([]seq, error) { return readFasta(r) }, wrt: writeFasta},
	"a3m":     {rd: readA3m, wrt: writeA3m},
	"sto":     {rd: plain(readSto), wrt: writeSto},
	"clustal": {rd: plain(readClustal), wrt: writeClustal},
	"aln":     {rd: plain(readAln), wrt: writeAln},
	"pfam":    {rd: plain(readPfam), wrt: writePfam},
}

func init() {
	for _, name := range fastaNames {
		formats[name] = formats["a2m"]
	}
}

// plain is for readers which do not care about options.
func plain(f func(io.Reader) ([]seq, error)) reader {
	return func(r io.Reader, _ *Options) ([]seq, error) { return f(r) }
}

func readA3m(r io.Reader, s_opts *Options) ([]seq, error) {
	seqs, err := readFasta(r)
	if err != nil {
		return nil, err
	}
	dotsToGaps(seqs)
	return seqs, a3mFix(seqs, s_opts.OmitQueryGaps)
}

// Formats lists the names we know, sorted.
func Formats() []string {
	var r []string
	for name := range formats {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// FormatOf takes the format from the file extension. A trailing .gz is
// ignored.
func FormatOf(fname string) (string, error) {
	base := strings.TrimSuffix(fname, ".gz")
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no file extension on %s", ErrFormat, fname)
	}
	ext = strings.ToLower(ext)
	if _, ok := formats[ext]; !ok {
		return "", fmt.Errorf("%w: %q from %s. Use one of %s", ErrFormat, ext, fname, strings.Join(Formats(), ", "))
	}
	return ext, nil
}

// dotsToGaps writes '.' as '-', so there is only one gap character.
func dotsToGaps(seqs []seq) {
	for _, s := range seqs {
		for i, c := range s.seq {
			if c == DotChar {
				s.seq[i] = GapChar
			}
		}
	}
}

// Read reads sequences in the given format. They come back in upper
// case with '-' for gaps and all the same length.
func Read(rdr io.Reader, format string, s_opts *Options) (*SeqGrp, error) {
	f, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	seqs, err := f.rd(rdr, s_opts)
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, ErrNoSeqs
	}
	seqgrp := &SeqGrp{seqs: seqs}
	dotsToGaps(seqgrp.seqs)
	if err := seqgrp.Upper(); err != nil {
		return nil, err
	}
	if s_opts.Validate {
		if err := seqgrp.Validate(s_opts.Alphabet); err != nil {
			return nil, err
		}
	}
	if err := seqgrp.CheckLengths(); err != nil {
		return nil, err
	}
	return seqgrp, nil
}
