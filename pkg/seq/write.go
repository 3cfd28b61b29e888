// 16 Feb 2025

package seq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	. "github.com/andrew-torda/neff/pkg/seq/common"
)

const (
	stoBlock     = 200 // residues per line in stockholm
	clustalBlock = 60
)

// withIDs returns the sequences, with names made up if the first one
// has none.
func withIDs(seqs []seq) []seq {
	if len(seqs) == 0 || seqs[0].id != "" {
		return seqs
	}
	r := make([]seq, len(seqs))
	for i, s := range seqs {
		r[i] = s
		r[i].id = fmt.Sprintf("sequence_%d", i+1)
	}
	return r
}

// idWidth is the space taken by the longest name, plus one.
func idWidth(seqs []seq) int {
	n := 0
	for _, s := range seqs {
		n = max(n, len(s.id))
	}
	return n + 1
}

// queryGaps lists columns where the first sequence has a gap.
func queryGaps(seqs []seq) []bool {
	if len(seqs) == 0 {
		return nil
	}
	gap := make([]bool, len(seqs[0].seq))
	for i, c := range seqs[0].seq {
		gap[i] = IsGap(c)
	}
	return gap
}

func writeFasta(w io.Writer, seqs []seq) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, "%c%s\n%s\n", cmmtChar, s.header(), s.seq); err != nil {
			return err
		}
	}
	return nil
}

// writeA3m drops gaps in columns where the query has a gap and writes
// residues there in lower case.
func writeA3m(w io.Writer, seqs []seq) error {
	gap := queryGaps(seqs)
	var t []byte
	for _, s := range seqs {
		t = t[:0]
		for i, c := range s.seq {
			switch {
			case i >= len(gap) || !gap[i]:
				t = append(t, c)
			case IsGap(c):
			case 'A' <= c && c <= 'Z':
				t = append(t, c+'a'-'A')
			default:
				t = append(t, c)
			}
		}
		if _, err := fmt.Fprintf(w, "%c%s\n%s\n", cmmtChar, s.header(), t); err != nil {
			return err
		}
	}
	return nil
}

func writeSto(w io.Writer, seqs []seq) error {
	wdth := idWidth(seqs)
	fmt.Fprint(w, "# STOCKHOLM 1.0\n\n")
	if len(seqs) > 0 {
		fmt.Fprintf(w, "%-5s%-3s%s\n\n", "#=GF", "ID", seqs[0].id)
	}
	for _, s := range seqs {
		fmt.Fprintf(w, "%-5s%-*s%s\n", "#=GS", wdth, s.id, s.remarks)
	}
	fmt.Fprintln(w)
	for i := 0; len(seqs) > 0 && i < len(seqs[0].seq); i += stoBlock {
		for _, s := range seqs {
			fmt.Fprintf(w, "%-*s%s\n", wdth, s.id, s.seq[i:min(i+stoBlock, len(s.seq))])
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

func writeClustal(w io.Writer, seqs []seq) error {
	wdth := idWidth(seqs)
	fmt.Fprint(w, "CLUSTAL multiple sequence alignment\n\n")
	for i := 0; len(seqs) > 0 && i < len(seqs[0].seq); i += clustalBlock {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, s := range seqs {
			if _, err := fmt.Fprintf(w, "%-*s%s\n", wdth, s.id, s.seq[i:min(i+clustalBlock, len(s.seq))]); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeAln writes bare sequences without the columns where the query
// has gaps.
func writeAln(w io.Writer, seqs []seq) error {
	gap := queryGaps(seqs)
	var b strings.Builder
	for _, s := range seqs {
		b.Reset()
		for i, c := range s.seq {
			if i >= len(gap) || !gap[i] {
				b.WriteByte(c)
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writePfam(w io.Writer, seqs []seq) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.id, s.seq); err != nil {
			return err
		}
	}
	return nil
}

// Write puts the sequences out in the given format.
func (seqgrp *SeqGrp) Write(w io.Writer, format string) error {
	f, ok := formats[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	bw := bufio.NewWriter(w)
	if err := f.wrt(bw, withIDs(seqgrp.seqs)); err != nil {
		return err
	}
	return bw.Flush()
}
