// 6 Feb 2025

package neff

import (
	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/neff/pkg/msa"
)

// Profile tallies residues in each column, but each sequence adds
// 1/weight instead of 1. It looks like [ncode][length_of_alignment].
// Row 0 is for gaps. ncode must be bigger than the biggest code in the
// alignment, so for an alphabet with n standard and k non-standard
// letters, it is n + k + 1.
// Summing rows 1 and up in a column gives the unnormalized column NEFF.
func Profile(m *msa.Matrix, weight []int, ncode int) *matrix.FMatrix2d {
	prof := matrix.NewFMatrix2d(ncode, m.Len())
	for irow, row := range m.Mat {
		f := float32(1. / float64(weight[irow]))
		for icol, c := range row {
			prof.Mat[c][icol] += f
		}
	}
	return prof
}

// ProfileFrac converts a profile to fractions of the non-gap total in
// each column, in place. The gap row becomes the fraction of the full
// weighted total which is gap. Columns with nothing in them stay zero.
func ProfileFrac(prof *matrix.FMatrix2d) {
	nrow, ncol := prof.Size()
	for icol := 0; icol < ncol; icol++ {
		var total, nongap float32
		for irow := 0; irow < nrow; irow++ {
			total += prof.Mat[irow][icol]
		}
		nongap = total - prof.Mat[0][icol]
		if total != 0 {
			prof.Mat[0][icol] /= total
		}
		if nongap == 0 {
			continue
		}
		for irow := 1; irow < nrow; irow++ {
			prof.Mat[irow][icol] /= nongap
		}
	}
}
