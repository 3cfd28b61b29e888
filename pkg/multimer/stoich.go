// 10 Feb 2025

// Package multimer splits the alignment of a complex into pieces.
// A homomer, written A<n>, is one chain repeated n times and every row
// holds n copies of the same thing. A heteromer, like A2B1, has the
// rows which pair different chains at the top, followed by the
// alignments of each chain on its own, in order A, B, C...
package multimer

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	homomerRe   = regexp.MustCompile(`^A(\d+)$`)
	heteromerRe = regexp.MustCompile(`^([A-Z][1-9][0-9]*)+$`)
	elementRe   = regexp.MustCompile(`([A-Z])([1-9][0-9]*)`)
)

// Stoichiometry is a parsed string like A4 or A2B1.
type Stoichiometry struct {
	Counts    []int // how often each chain appears, chain A first
	IsHomomer bool
	text      string
}

func (s *Stoichiometry) String() string { return s.text }

// NChain is the number of different chains.
func (s *Stoichiometry) NChain() int { return len(s.Counts) }

// ParseHomomer accepts exactly A<n> with n at least one.
// It returns the repeat count in a slice of one.
func ParseHomomer(s string) ([]int, bool) {
	m := homomerRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return nil, false
	}
	return []int{n}, true
}

// ParseHeteromer wants letters from A with none missed out, each
// followed by a positive count. It returns the counts.
func ParseHeteromer(s string) ([]int, error) {
	if !heteromerRe.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStoichiometry, s)
	}
	var counts []int
	want := byte('A')
	for _, m := range elementRe.FindAllStringSubmatch(s, -1) {
		if m[1][0] != want {
			return nil, fmt.Errorf("%w: %q, expected chain %c, got %s", ErrInvalidStoichiometry, s, want, m[1])
		}
		want++
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidStoichiometry, s, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// Parse tries the string as a homomer first, then as a heteromer.
func Parse(s string) (*Stoichiometry, error) {
	if counts, ok := ParseHomomer(s); ok {
		return &Stoichiometry{Counts: counts, IsHomomer: true, text: s}, nil
	}
	counts, err := ParseHeteromer(s)
	if err != nil {
		return nil, err
	}
	return &Stoichiometry{Counts: counts, text: s}, nil
}

// ChainLetter names chain i, counting from 0, the way spreadsheets name
// columns. 0 is A, 25 is Z, 26 is AA.
func ChainLetter(i int) string {
	var b []byte
	for ; i >= 0; i = i/26 - 1 {
		b = append([]byte{byte('A' + i%26)}, b...)
	}
	return string(b)
}
