// 15 Feb 2025
// Readers for the formats where each line has a name and a piece of
// sequence, or just a sequence.

package seq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine is the longest line we will accept. Some alignments put a
// whole sequence on one line.
const maxLine = 1 << 30

func newScanner(rdr io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(rdr)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// scanErr prefers the scanner's own error. After a failed read, the
// scanner hands over the piece of line it had, which may not parse.
func scanErr(sc *bufio.Scanner, err error) error {
	if e := sc.Err(); e != nil {
		return e
	}
	return err
}

// byName collects pieces of sequence by name, in the order names are
// first seen.
type byName struct {
	ndx  map[string]int
	seqs []seq
}

func newByName() *byName { return &byName{ndx: make(map[string]int)} }

// add appends to a sequence, or starts it.
func (b *byName) add(id, s string) {
	i, ok := b.ndx[id]
	if !ok {
		i = len(b.seqs)
		b.ndx[id] = i
		b.seqs = append(b.seqs, seq{id: id})
	}
	b.seqs[i].seq = append(b.seqs[i].seq, s...)
}

// replace throws away anything we had under the name.
func (b *byName) replace(id, s string) {
	if i, ok := b.ndx[id]; ok {
		b.seqs[i].seq = []byte(s)
		return
	}
	b.add(id, s)
}

// nameSeq splits a line into name and sequence.
func nameSeq(line string, lineno int) (string, string, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return "", "", fmt.Errorf("line %d: expected a name and a sequence, got \"%s\"", lineno, trimStr(line, 40))
	}
	return f[0], f[1], nil
}

// readSto reads stockholm format. Remarks come from #=GS lines.
// We stop at the first "//".
func readSto(rdr io.Reader) ([]seq, error) {
	b := newByName()
	remarks := make(map[string]string)
	sc := newScanner(rdr)
lines:
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "//"):
			break lines
		case strings.HasPrefix(line, "#=GS"):
			if f := strings.Fields(line); len(f) > 1 {
				remarks[f[1]] = strings.Join(f[2:], " ")
			}
		case line[0] == '#':
			continue
		default:
			id, s, err := nameSeq(line, lineno)
			if err != nil {
				return nil, scanErr(sc, err)
			}
			b.add(id, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i := range b.seqs {
		b.seqs[i].remarks = remarks[b.seqs[i].id]
	}
	return b.seqs, nil
}

// readClustal reads clustal. The first line is a header and lines
// starting with white space mark conserved columns.
func readClustal(rdr io.Reader) ([]seq, error) {
	b := newByName()
	sc := newScanner(rdr)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		if lineno == 1 && strings.Contains(line, "CLUSTAL") {
			continue
		}
		if strings.TrimSpace(line) == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		id, s, err := nameSeq(line, lineno)
		if err != nil {
			return nil, scanErr(sc, err)
		}
		b.add(id, s)
	}
	return b.seqs, sc.Err()
}

// readPfam reads one line per sequence, name then sequence. If a name
// comes again, the later sequence wins.
func readPfam(rdr io.Reader) ([]seq, error) {
	b := newByName()
	sc := newScanner(rdr)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line == "//" {
			continue
		}
		id, s, err := nameSeq(line, lineno)
		if err != nil {
			return nil, scanErr(sc, err)
		}
		b.replace(id, s)
	}
	return b.seqs, sc.Err()
}

// readAln has one sequence per line and no names at all.
func readAln(rdr io.Reader) ([]seq, error) {
	var seqs []seq
	sc := newScanner(rdr)
	for sc.Scan() {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			seqs = append(seqs, seq{seq: []byte(f[0])})
		}
	}
	return seqs, sc.Err()
}
