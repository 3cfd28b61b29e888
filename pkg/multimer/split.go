// 11 Feb 2025

package multimer

import (
	"bytes"
	"fmt"

	"github.com/andrew-torda/neff/pkg/msa"
)

// layout says where the chains sit along a row.
// Chain i covers columns bounds[i] up to bounds[i+1] and is made of
// counts[i] copies of the same length.
type layout struct {
	bounds []int
	counts []int
}

// copyLen is the length of one copy of chain ichain.
func (l *layout) copyLen(ichain int) int {
	return (l.bounds[ichain+1] - l.bounds[ichain]) / l.counts[ichain]
}

// segment is copy number icopy, from 0, of a chain in a row.
func (l *layout) segment(row []uint8, ichain, icopy int) []uint8 {
	n := l.copyLen(ichain)
	start := l.bounds[ichain] + n*icopy
	return row[start : start+n]
}

// oneCopy checks that all copies of a chain in a row are the same and
// returns the first.
func (l *layout) oneCopy(row []uint8, irow, ichain int, name string) ([]uint8, error) {
	first := l.segment(row, ichain, 0)
	for icopy := 1; icopy < l.counts[ichain]; icopy++ {
		if !bytes.Equal(first, l.segment(row, ichain, icopy)) {
			desc := fmt.Sprintf("chain %s%d", ChainLetter(ichain), l.counts[ichain])
			if name != "" {
				desc = name + " " + desc
			}
			return nil, newRowError(irow, ErrInconsistentRepeat, desc)
		}
	}
	return first, nil
}

// occupied returns the number of chains with at least one residue in a
// row and the first of them. We stop counting at two.
func (l *layout) occupied(row []uint8) (n, first int) {
	first = -1
	for ichain := 0; ichain+1 < len(l.bounds); ichain++ {
		for _, c := range row[l.bounds[ichain]:l.bounds[ichain+1]] {
			if c != 0 {
				if n++; n == 1 {
					first = ichain
				}
				break
			}
		}
		if n > 1 {
			break
		}
	}
	return n, first
}

// Homomer checks that every row holds identical copies of the chain and
// returns the alignment of one copy.
func (s *Stoichiometry) Homomer(m *msa.Matrix) (*msa.Matrix, error) {
	if !s.IsHomomer {
		return nil, fmt.Errorf("%w: %s is not a homomer", ErrInvalidStoichiometry, s)
	}
	if m.Empty() {
		return nil, fmt.Errorf("%w: no alignment to split", msa.ErrEmptyInput)
	}
	depth, length := m.Size()
	n := s.Counts[0]
	if length%n != 0 {
		const emsg = "%w: length %d cannot be split into %d copies for %s"
		return nil, fmt.Errorf(emsg, ErrLengthMismatch, length, n, s)
	}
	l := layout{bounds: []int{0, length}, counts: s.Counts}
	r := msa.New(depth, length/n)
	for irow, row := range m.Mat {
		seg, err := l.oneCopy(row, irow, 0, "")
		if err != nil {
			return nil, err
		}
		copy(r.Mat[irow], seg)
	}
	return r, nil
}

// Sets are the pieces of a heteromer alignment.
// PerChain has one entry per chain. The first row of each is the query's
// piece for that chain. A chain with no rows of its own gets an empty
// matrix.
type Sets struct {
	Paired   *msa.Matrix
	PerChain []*msa.Matrix
}

// Heteromer splits an alignment into the paired rows at the top and the
// alignment for each chain. chainLengths has the length of one copy of
// each chain.
// After the paired rows, every row must have residues in exactly one
// chain and the chains must come in order.
func (s *Stoichiometry) Heteromer(m *msa.Matrix, chainLengths []int) (*Sets, error) {
	nchain := s.NChain()
	if len(chainLengths) != nchain {
		const emsg = "%w: %d chain lengths given, but %s has %d chains"
		return nil, fmt.Errorf(emsg, ErrLengthMismatch, len(chainLengths), s, nchain)
	}
	if m.Empty() {
		return nil, fmt.Errorf("%w: no alignment to split", msa.ErrEmptyInput)
	}
	l := layout{bounds: make([]int, nchain+1), counts: s.Counts}
	for i, n := range chainLengths {
		if n < 1 {
			return nil, fmt.Errorf("%w: chain %s has length %d", ErrLengthMismatch, ChainLetter(i), n)
		}
		l.bounds[i+1] = l.bounds[i] + n*s.Counts[i]
	}
	depth, length := m.Size()
	if l.bounds[nchain] != length {
		const emsg = "%w: chain lengths and %s give %d columns, alignment has %d"
		return nil, fmt.Errorf(emsg, ErrLengthMismatch, s, l.bounds[nchain], length)
	}

	npaired := 0
	for ; npaired < depth; npaired++ {
		if n, _ := l.occupied(m.Mat[npaired]); n < 2 {
			break
		}
	}
	for ichain, cnt := range s.Counts {
		if cnt < 2 {
			continue
		}
		for irow := 0; irow < npaired; irow++ {
			if _, err := l.oneCopy(m.Mat[irow], irow, ichain, "paired"); err != nil {
				return nil, err
			}
		}
	}
	paired := make([]int, npaired)
	for i := range paired {
		paired[i] = i
	}
	sets := &Sets{Paired: m.Pick(paired), PerChain: make([]*msa.Matrix, nchain)}

	rows := make([][]int, nchain)
	last := 0
	for irow := npaired; irow < depth; irow++ {
		n, ichain := l.occupied(m.Mat[irow])
		switch {
		case n == 0:
			return nil, newRowError(irow, ErrNoSingleChain, s.String())
		case n > 1:
			return nil, newRowError(irow, ErrMultipleChains, s.String())
		case ichain < last:
			desc := fmt.Sprintf("chain %s after chain %s", ChainLetter(ichain), ChainLetter(last))
			return nil, newRowError(irow, ErrOutOfOrder, desc)
		}
		last = ichain
		rows[ichain] = append(rows[ichain], irow)
	}

	for ichain, rr := range rows {
		if len(rr) == 0 {
			sets.PerChain[ichain] = msa.New(0, 0)
			continue
		}
		r := msa.New(len(rr)+1, l.copyLen(ichain))
		for i, irow := range append([]int{0}, rr...) {
			seg, err := l.oneCopy(m.Mat[irow], irow, ichain, "")
			if err != nil {
				return nil, err
			}
			copy(r.Mat[i], seg)
		}
		sets.PerChain[ichain] = r
	}
	return sets, nil
}
