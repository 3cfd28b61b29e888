// 20 Dec 2017

// Package seq provides functions for sequences in an alignment. It can
// read and write them in the usual alignment formats, a2m, a3m, fasta,
// stockholm, clustal, pfam and plain aln, and it does the clean-up that
// comes before encoding, like dropping columns where the query has gaps
// or keeping a window of positions.
package seq

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/neff/pkg/alphabet"
)

// seq is one sequence. The id is the first word of the comment and
// remarks is the rest of it.
type seq struct {
	id      string
	remarks string
	seq     []byte
}

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty         int
	Alphabet      alphabet.Alphabet
	Validate      bool // complain about letters not in the alphabet
	OmitQueryGaps bool // a3m inserts are dropped instead of padded
	DryRun        bool // Do not write any files
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// GetID returns the identifier, which may be empty
func (s seq) GetID() string { return s.id }

// GetRemarks returns whatever came after the identifier
func (s seq) GetRemarks() string { return s.remarks }

// Len is the length of the sequence, with gaps
func (s seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one
func (s *seq) SetSeq(t []byte) { s.seq = t }

// newSeq splits a comment line into the identifier and remarks. A leading
// ">" is removed and runs of white space in the remarks become one space.
func newSeq(cmmt string, residues []byte) seq {
	f := strings.Fields(strings.TrimPrefix(strings.TrimSpace(cmmt), ">"))
	if len(f) == 0 {
		return seq{seq: residues}
	}
	return seq{id: f[0], remarks: strings.Join(f[1:], " "), seq: residues}
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It returns an error if it meets a symbol outside of ascii.
func (s *seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d in sequence \"%s\""
	for i, c := range s.seq {
		if c > 127 {
			return fmt.Errorf(symerr, c, i+1, trimStr(s.id, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() string {
	return ">" + s.header() + "\n" + string(s.seq)
}

// header is the comment line without the ">"
func (s seq) header() string {
	if s.remarks == "" {
		return s.id
	}
	return s.id + " " + s.remarks
}

// SeqGrp is a group of sequences. In an alignment the first one is the
// query.
type SeqGrp struct {
	seqs []seq
}

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the length
// of all sequences.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return len(seqgrp.seqs[0].seq)
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// GetSeqSlc return the slice of sequences
func (seqgrp *SeqGrp) GetSeqSlc() []seq { return seqgrp.seqs }

// Residues gives the sequences without names, ready for encoding.
func (seqgrp *SeqGrp) Residues() [][]byte {
	r := make([][]byte, len(seqgrp.seqs))
	for i := range seqgrp.seqs {
		r[i] = seqgrp.seqs[i].seq
	}
	return r
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// FindNdx Returns the index of the sequence whose id or remarks contain
// a string. Numbering starts from zero. We remove any ">", space or tab
// at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")
	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.header(), s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If
// prefix is not given, sequences will be called s0, s1, ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		f := seq{id: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
