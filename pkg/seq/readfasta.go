// Reader for fasta format files and the a2m and a3m variants.

package seq

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/andrew-torda/neff/pkg/white"
)

// The lexer sends lines, or pieces of lines if a line does not fit in
// one read. A line starting with cmmtChar starts a new sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool // the line ended here
	eof      bool
	err      error // only set with eof
}

type lexer struct {
	input    []byte
	ichan    chan *item
	rdr      io.Reader
	rdErr    error // came with the last data read
	itempool sync.Pool
	seqs     []seq
	cmmt     string // partial comment
	seq      []byte // partial sequence
	inRecord bool   // have we seen a comment line yet ?
	err      error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i < 1 {
		panic("setFastaRdSize given buffer length less than 1")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends items to channel, ichan.
// An item is terminated by a newline, or the end of the buffer or
// end of input.
func (l *lexer) next() {
	defer close(l.ichan)
	for {
		item := l.itempool.Get().(*item)
		item.data, item.complete, item.eof, item.err = nil, false, false, nil
		if len(l.input) == 0 {
			n, err := 0, l.rdErr
			if err == nil {
				buf := make([]byte, rdsize)
				n, err = l.rdr.Read(buf)
				l.input = buf[:n]
			}
			if n > 0 {
				l.rdErr = err // held until the data is used up
			} else {
				if err == nil {
					l.itempool.Put(item)
					continue
				}
				if err != io.EOF {
					item.err = err // signal that a real error occurred.
				}
				item.eof, item.complete = true, true
				l.ichan <- item
				return
			}
		}

		if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
			item.data = l.input // no newline found, so just send
			l.input = nil       // back whatever we have in the buffer.
		} else {
			item.data = l.input[:ndx]
			item.complete = true
			l.input = l.input[ndx+1:]
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// flush stores the sequence we have been building.
func (l *lexer) flush() bool {
	if !l.inRecord {
		return true
	}
	s := newSeq(l.cmmt, l.seq)
	if len(l.seq) == 0 {
		l.err = fmt.Errorf("zero length sequence after \"%s\"", trimStr(s.header(), 40))
		return false
	}
	l.seqs = append(l.seqs, s)
	l.cmmt, l.seq = "", nil
	return true
}

// addSeq adds to the current sequence.
func (l *lexer) addSeq(data []byte) bool {
	white.Remove(&data)
	if len(data) == 0 {
		return true
	}
	if !l.inRecord {
		l.err = fmt.Errorf("sequence data before first \"%c\": %s", cmmtChar, trimStr(string(data), 40))
		return false
	}
	l.seq = append(l.seq, data...)
	return true
}

// finish is called at the end of input.
func (l *lexer) finish(item *item) stateFn {
	if item.err != nil {
		l.err = item.err
		return nil
	}
	l.flush()
	return nil
}

// gline is at the start of a line.
func gline(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item.eof {
		return l.finish(item)
	}
	if len(item.data) > 0 && item.data[0] == cmmtChar {
		if !l.flush() {
			return nil
		}
		l.inRecord = true
		l.cmmt = string(item.data[1:])
		if item.complete {
			return gline
		}
		return gcmmt
	}
	if !l.addSeq(item.data) {
		return nil
	}
	if item.complete {
		return gline
	}
	return gseq
}

// We are in the middle of a sequence line.
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item.eof {
		return l.finish(item)
	}
	if !l.addSeq(item.data) {
		return nil
	}
	if item.complete {
		return gline
	}
	return gseq
}

// We are in the middle of a comment line.
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item.eof {
		return l.finish(item)
	}
	l.cmmt = l.cmmt + string(item.data)
	if item.complete {
		return gline
	}
	return gcmmt
}

// readFasta reads anything that looks like fasta.
func readFasta(rdr io.Reader) ([]seq, error) {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2)}
	l.itempool.New = newItem
	go l.next()
	for state := gline; state != nil; {
		state = state(&l)
	}
	for range l.ichan { // let the reader finish if we stopped early
	}
	if l.err != nil {
		return nil, l.err
	}
	uniqueIDs(l.seqs)
	return l.seqs, nil
}

// ReadFasta reads fasta formatted data and adds the sequences to seqgrp.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	seqs, err := readFasta(rdr)
	if err != nil {
		return err
	}
	if len(seqs) == 0 {
		return ErrNoSeqs
	}
	seqgrp.seqs = append(seqgrp.seqs, seqs...)
	return nil
}

// uniqueIDs adds _1, _2, ... to identifiers we have already seen.
func uniqueIDs(seqs []seq) {
	seen := make(map[string]bool, len(seqs))
	num := 0
	for i := range seqs {
		id := seqs[i].id
		if id == "" {
			continue
		}
		if seen[id] {
			num++
			seqs[i].id = fmt.Sprintf("%s_%d", id, num)
		}
		seen[seqs[i].id] = true
	}
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

// a3mFix deals with a3m files, where lower case letters are inserts
// and are not padded in the other sequences. If the sequences are
// already the same length, nothing is done.
// With omitInserts, the lower case letters are removed. Otherwise every
// insert is padded with gaps, so all sequences line up.
func a3mFix(seqs []seq, omitInserts bool) error {
	if len(seqs) == 0 || sameLengths(seqs) {
		return nil
	}
	if omitInserts {
		for i := range seqs {
			s := seqs[i].seq[:0]
			for _, c := range seqs[i].seq {
				if !isLower(c) {
					s = append(s, c)
				}
			}
			seqs[i].seq = s
		}
		return nil
	}

	var nmatch int
	for _, c := range seqs[0].seq {
		if !isLower(c) {
			nmatch++
		}
	}
	ins := make([]int, nmatch+1) // longest insert before each match column
	for i, s := range seqs {
		k, run := 0, 0
		for _, c := range s.seq {
			if isLower(c) {
				run++
				continue
			}
			if k == nmatch {
				k++
				break
			}
			ins[k] = max(ins[k], run)
			run = 0
			k++
		}
		if k != nmatch {
			const emsg = "a3m sequence %d (%s) has %d match columns, the first has %d"
			return fmt.Errorf(emsg, i+1, trimStr(s.id, 40), k, nmatch)
		}
		ins[k] = max(ins[k], run)
	}
	width := nmatch
	for _, n := range ins {
		width += n
	}
	for i := range seqs {
		old := seqs[i].seq
		s := make([]byte, 0, width)
		k, run := 0, 0
		pad := func() {
			for ; run < ins[k]; run++ {
				s = append(s, '-')
			}
			run = 0
		}
		for _, c := range old {
			if isLower(c) {
				s = append(s, c)
				run++
				continue
			}
			pad()
			s = append(s, c)
			k++
		}
		pad()
		seqs[i].seq = s
	}
	return nil
}
