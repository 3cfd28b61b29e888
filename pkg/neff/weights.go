// 4 Feb 2025

// Package neff calculates sequence weights and the number of effective
// sequences (NEFF) of an encoded alignment.
// A sequence's weight is one plus the number of other sequences which
// are similar to it. Two sequences are similar if the number of
// mismatches is not above a cutoff. NEFF is the sum of 1/weight.
package neff

import (
	"fmt"

	"github.com/andrew-torda/neff/pkg/alphabet"
	"github.com/andrew-torda/neff/pkg/msa"
)

// cutoff is the number of mismatches allowed for n positions.
// The arithmetic is float32 with truncation, so 5 * (1 - 0.8) gives 0,
// not 1.
func cutoff(n int, threshold float32) int {
	return int(float32(n) * (1 - threshold))
}

// resTable says which codes count as residues when we count the length
// of a sequence. Under ConsiderGapInCutoff, non-standard letters do not.
func resTable(nStd int, policy alphabet.NonStandard) (isRes [256]bool) {
	for i := 1; i < len(isRes); i++ {
		isRes[i] = true
	}
	if policy == alphabet.ConsiderGapInCutoff {
		for i := nStd + 1; i < len(isRes); i++ {
			isRes[i] = false
		}
	}
	return isRes
}

// Weights returns, for each sequence, one plus the number of other
// sequences it is similar to.
// With symmetric true, every pair shares one cutoff based on the
// alignment length. Otherwise each sequence gets its own cutoff from its
// own number of residues and only mismatches at its own residue
// positions count against it. Then a can be similar to b while b is
// not similar to a.
// nStd is the number of standard letters in the alphabet.
func Weights(m *msa.Matrix, threshold float32, symmetric bool, nStd int,
	policy alphabet.NonStandard) ([]int, error) {
	depth, length := m.Size()
	if depth == 0 || length == 0 {
		return nil, fmt.Errorf("%w: no sequences to compute weights for", msa.ErrEmptyInput)
	}
	if !(threshold > 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: threshold %g not in (0,1]", msa.ErrInvalidArgument, threshold)
	}
	weight := make([]int, depth)
	for i := range weight {
		weight[i] = 1
	}
	if symmetric {
		symWeights(m.Mat, cutoff(length, threshold), weight)
		return weight, nil
	}

	isRes := resTable(nStd, policy)
	cut := make([]int, depth)
	for i, row := range m.Mat {
		n := 0
		for _, c := range row {
			if isRes[c] {
				n++
			}
		}
		cut[i] = cutoff(n, threshold)
	}
	asymWeights(m.Mat, cut, &isRes, weight)
	return weight, nil
}

// symWeights is the inner loop when all pairs share one cutoff.
// We can stop looking at a pair once the mismatches go over the cutoff.
func symWeights(mat [][]uint8, cut int, weight []int) {
	for i := 0; i < len(mat); i++ {
		si := mat[i]
		for j := i + 1; j < len(mat); j++ {
			sj := mat[j]
			nmis := 0
			for k, c := range si {
				if c != sj[k] {
					if nmis++; nmis > cut {
						break
					}
				}
			}
			if nmis <= cut {
				weight[i]++
				weight[j]++
			}
		}
	}
}

// asymWeights is the inner loop when each sequence has its own cutoff.
// A mismatch counts against a sequence only where it has a residue. We
// can stop once both sequences are over their cutoffs.
func asymWeights(mat [][]uint8, cut []int, isRes *[256]bool, weight []int) {
	for i := 0; i < len(mat); i++ {
		si := mat[i]
		for j := i + 1; j < len(mat); j++ {
			sj := mat[j]
			mi, mj := 0, 0
			for k, c := range si {
				d := sj[k]
				if c == d {
					continue
				}
				if isRes[c] {
					mi++
				}
				if isRes[d] {
					mj++
				}
				if mi > cut[i] && mj > cut[j] {
					break
				}
			}
			if mi <= cut[i] {
				weight[i]++
			}
			if mj <= cut[j] {
				weight[j]++
			}
		}
	}
}
