// 7 Feb 2025

package neff

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/neff/pkg/msa"
)

// nMasked is how many sequences are left out in a masking round. The
// query is never a candidate.
func nMasked(depth int, maskFrac float32) int {
	if depth < 2 {
		return 0
	}
	return int(maskFrac * float32(depth-1))
}

// Mask picks sequences to leave out. It returns the matrix without them
// and the sorted indices of the ones left out. Row 0 always stays.
func Mask(m *msa.Matrix, maskFrac float32, rnd *rand.Rand) (*msa.Matrix, []int) {
	depth := m.Depth()
	n := nMasked(depth, maskFrac)
	perm := rnd.Perm(depth - 1)[:n]
	drop := make([]bool, depth)
	excluded := make([]int, n)
	for i, p := range perm {
		drop[p+1] = true
		excluded[i] = p + 1
	}
	sort.Ints(excluded)
	return m.Without(drop), excluded
}

// MaskResult has the NEFF from every masking round and the round with
// the biggest NEFF.
type MaskResult struct {
	Neffs    []float64 // one per round
	Best     int       // index into Neffs
	Excluded []int     // rows left out in the best round
}

// BestNeff is the biggest NEFF of the rounds.
func (r *MaskResult) BestNeff() float64 { return r.Neffs[r.Best] }

// MaskedNeff does maskCount rounds of leaving out a fraction of the
// sequences and calculating NEFF on what is left. Round i gets its own
// random source seeded with seed+i, so the answer does not depend on
// how the rounds are scheduled. If two rounds give the same NEFF, the
// earlier one wins.
func MaskedNeff(m *msa.Matrix, p *Params, maskFrac float32, maskCount int, seed int64) (*MaskResult, error) {
	if maskCount < 1 {
		return nil, fmt.Errorf("%w: mask count %d must be positive", msa.ErrInvalidArgument, maskCount)
	}
	if !(maskFrac > 0 && maskFrac < 1) {
		return nil, fmt.Errorf("%w: mask fraction %g not in (0,1)", msa.ErrInvalidArgument, maskFrac)
	}
	if m.Empty() {
		return nil, fmt.Errorf("%w: nothing to mask", msa.ErrEmptyInput)
	}
	neffs := make([]float64, maskCount)
	excl := make([][]int, maskCount)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < maskCount; i++ {
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(seed + int64(i)))
			kept, dropped := Mask(m, maskFrac, rnd)
			neff, err := p.Neff(kept)
			if err != nil {
				return fmt.Errorf("mask round %d: %w", i+1, err)
			}
			neffs[i], excl[i] = neff, dropped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	best := 0
	for i, x := range neffs {
		if x > neffs[best] {
			best = i
		}
	}
	return &MaskResult{Neffs: neffs, Best: best, Excluded: excl[best]}, nil
}
