// 17 Feb 2025
// Things done to a group of sequences after reading and before encoding.

package seq

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/andrew-torda/neff/pkg/alphabet"
	. "github.com/andrew-torda/neff/pkg/seq/common"
)

var (
	ErrInvalidLetter = errors.New("invalid character")
	ErrUnaligned     = errors.New("sequences are not aligned")
	ErrWindow        = errors.New("invalid position window")
)

func sameLengths(seqs []seq) bool {
	for _, s := range seqs {
		if len(s.seq) != len(seqs[0].seq) {
			return false
		}
	}
	return true
}

// CheckLengths makes sure all sequences are as long as the first.
func (seqgrp *SeqGrp) CheckLengths() error {
	const msg = "%w: first sequence length %d, but sequence %d (%s) has length %d"
	seqs := seqgrp.seqs
	for i, s := range seqs {
		if len(s.seq) != len(seqs[0].seq) {
			return fmt.Errorf(msg, ErrUnaligned, len(seqs[0].seq), i+1, trimStr(s.id, 40), len(s.seq))
		}
	}
	return nil
}

// Validate checks that every letter belongs to the alphabet, counting
// non-standard letters and gaps.
func (seqgrp *SeqGrp) Validate(alpha alphabet.Alphabet) error {
	var ok [256]bool
	for _, c := range []byte(alpha.Allowed()) {
		ok[c] = true
	}
	for i, s := range seqgrp.seqs {
		for j, c := range s.seq {
			if !ok[c] {
				const emsg = "%w %q for %s in sequence %d at position %d"
				return fmt.Errorf(emsg, ErrInvalidLetter, c, alpha, i+1, j+1)
			}
		}
	}
	return nil
}

// OmitQueryGaps removes every column where the first sequence has a
// gap.
func (seqgrp *SeqGrp) OmitQueryGaps() {
	if len(seqgrp.seqs) == 0 || bytes.IndexByte(seqgrp.seqs[0].seq, GapChar) == -1 {
		return
	}
	keep := make([]bool, len(seqgrp.seqs[0].seq))
	for i, c := range seqgrp.seqs[0].seq {
		keep[i] = !IsGap(c)
	}
	for i := range seqgrp.seqs {
		old := seqgrp.seqs[i].seq
		s := make([]byte, 0, len(keep))
		for j, c := range old {
			if j < len(keep) && keep[j] {
				s = append(s, c)
			}
		}
		seqgrp.seqs[i].seq = s
	}
}

// residueIndex returns the index in the alignment of the n'th residue,
// counting from 1, in the query. It returns len(query) if there are not
// that many.
func residueIndex(query []byte, n int) int {
	for i, c := range query {
		if !IsGap(c) {
			if n--; n == 0 {
				return i
			}
		}
	}
	return len(query)
}

// Window keeps positions posStart to posEnd, counting from 1 and
// including both ends. If the query has gaps, positions count residues
// in the query, not columns. posEnd is clipped to the alignment length.
func (seqgrp *SeqGrp) Window(posStart, posEnd int) error {
	if len(seqgrp.seqs) == 0 {
		return nil
	}
	query := seqgrp.seqs[0].seq
	length := len(query)
	ngap := 0
	for _, c := range query {
		if IsGap(c) {
			ngap++
		}
	}
	if posStart < 1 || posStart >= length {
		return fmt.Errorf("%w: pos_start %d should be at least 1 and less than the length of the query, %d", ErrWindow, posStart, length)
	}
	if posEnd <= posStart {
		return fmt.Errorf("%w: pos_end %d should be greater than pos_start %d", ErrWindow, posEnd, posStart)
	}
	posEnd = min(posEnd, length)
	if posStart == 1 && posEnd == length-ngap && ngap == 0 {
		return nil
	}
	start, end := posStart-1, posEnd-1
	if ngap > 0 {
		start = residueIndex(query, posStart)
		if start == length {
			return fmt.Errorf("%w: pos_start %d is past the %d residues in the query", ErrWindow, posStart, length-ngap)
		}
		end = min(residueIndex(query, posEnd), length-1)
	}
	for i := range seqgrp.seqs {
		s := seqgrp.seqs[i].seq
		seqgrp.seqs[i].seq = s[start : end+1]
	}
	return nil
}

// Truncate keeps the first n sequences. n < 1 means keep everything.
func (seqgrp *SeqGrp) Truncate(n int) {
	if n > 0 && n < len(seqgrp.seqs) {
		seqgrp.seqs = seqgrp.seqs[:n]
	}
}

// Merge adds the sequences from other whose residues we do not already
// have. Both groups must be the same length.
func (seqgrp *SeqGrp) Merge(other *SeqGrp) error {
	if len(other.seqs) == 0 {
		return nil
	}
	if len(seqgrp.seqs) > 0 && seqgrp.GetLen() != other.GetLen() {
		const emsg = "%w: sequences have length %d, but earlier ones had length %d"
		return fmt.Errorf(emsg, ErrUnaligned, other.GetLen(), seqgrp.GetLen())
	}
	have := make(map[string]bool, len(seqgrp.seqs)+len(other.seqs))
	for _, s := range seqgrp.seqs {
		have[string(s.seq)] = true
	}
	for _, s := range other.seqs {
		if !have[string(s.seq)] {
			have[string(s.seq)] = true
			seqgrp.seqs = append(seqgrp.seqs, s)
		}
	}
	return nil
}

// Without returns a new group without the sequences marked in drop.
func (seqgrp *SeqGrp) Without(drop []bool) *SeqGrp {
	r := new(SeqGrp)
	for i, s := range seqgrp.seqs {
		if i < len(drop) && drop[i] {
			continue
		}
		r.seqs = append(r.seqs, s)
	}
	return r
}
