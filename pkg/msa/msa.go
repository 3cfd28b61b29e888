// 3 Feb 2025

// Package msa holds an encoded multiple sequence alignment.
// Every row is a slice into one backing array, so the whole alignment is
// one allocation. Row 0 is the query.
// Nothing here changes a matrix in place. Removing columns or picking
// rows gives you a new matrix, built in one pass.
package msa

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/neff/pkg/alphabet"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyInput      = errors.New("empty input")
)

// Matrix is depth x length residue codes. 0 is a gap.
// The rows come from a matrix.BMatrix2d. ncol is kept separately, so a
// matrix with no rows still knows its width.
type Matrix struct {
	Mat  [][]uint8
	ncol int
}

// New gives us a zero-filled matrix of n_r rows and n_c columns.
func New(n_r, n_c int) *Matrix {
	return &Matrix{Mat: matrix.NewBMatrix2d(n_r, n_c).Mat, ncol: n_c}
}

// FromRows copies rows into a new matrix. All rows must have the same
// length.
func FromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	ncol := len(rows[0])
	m := New(len(rows), ncol)
	for i, r := range rows {
		if len(r) != ncol {
			const emsg = "%w: row %d has length %d, but row 1 has length %d"
			return nil, fmt.Errorf(emsg, ErrInvalidArgument, i+1, len(r), ncol)
		}
		copy(m.Mat[i], r)
	}
	return m, nil
}

// Encode turns aligned sequences into a matrix of codes.
func Encode(seqs [][]byte, e *alphabet.Encoder) (*Matrix, error) {
	if len(seqs) == 0 {
		return New(0, 0), nil
	}
	ncol := len(seqs[0])
	m := New(len(seqs), ncol)
	for i, s := range seqs {
		if len(s) != ncol {
			const emsg = "%w: sequence %d has length %d, but the first has length %d"
			return nil, fmt.Errorf(emsg, ErrInvalidArgument, i+1, len(s), ncol)
		}
		e.Encode(s, m.Mat[i])
	}
	return m, nil
}

// Size returns the number of rows and columns
func (m *Matrix) Size() (nrow, ncol int) {
	if nrow = len(m.Mat); nrow == 0 {
		return 0, 0
	}
	return nrow, m.ncol
}

// Depth is the number of sequences
func (m *Matrix) Depth() int { return len(m.Mat) }

// Len is the alignment length. It is zero if there are no rows.
func (m *Matrix) Len() int {
	_, ncol := m.Size()
	return ncol
}

// Empty is true if there is nothing to calculate with.
func (m *Matrix) Empty() bool {
	nrow, ncol := m.Size()
	return nrow == 0 || ncol == 0
}

// keepCols builds a new matrix from the listed columns.
func (m *Matrix) keepCols(keep []int) *Matrix {
	r := New(m.Depth(), len(keep))
	for irow, row := range m.Mat {
		dst := r.Mat[irow]
		for i, icol := range keep {
			dst[i] = row[icol]
		}
	}
	return r
}

// Cols returns the columns from start up to, not including, end.
func (m *Matrix) Cols(start, end int) *Matrix {
	r := New(m.Depth(), end-start)
	for irow, row := range m.Mat {
		copy(r.Mat[irow], row[start:end])
	}
	return r
}

// Pick returns a new matrix with the rows listed in ndx, in that order.
func (m *Matrix) Pick(ndx []int) *Matrix {
	r := New(len(ndx), m.Len())
	for i, irow := range ndx {
		copy(r.Mat[i], m.Mat[irow])
	}
	return r
}

// Without returns a matrix without the rows marked in drop.
// drop can be shorter than the number of rows.
func (m *Matrix) Without(drop []bool) *Matrix {
	keep := make([]int, 0, m.Depth())
	for i := range m.Mat {
		if i < len(drop) && drop[i] {
			continue
		}
		keep = append(keep, i)
	}
	return m.Pick(keep)
}

// GapCount returns the number of gaps in each column.
func (m *Matrix) GapCount() []int {
	gapcnt := make([]int, m.Len())
	for _, row := range m.Mat {
		for i, c := range row {
			if c == 0 {
				gapcnt[i]++
			}
		}
	}
	return gapcnt
}

// RmGappy removes every column in which the number of gaps reaches
// depth * gapCutoff, with the product truncated to an integer.
// A cutoff of exactly 1 removes nothing. The product is done in
// float32 and truncated, never rounded.
func (m *Matrix) RmGappy(gapCutoff float32) (*Matrix, error) {
	if !(gapCutoff > 0 && gapCutoff <= 1) {
		return nil, fmt.Errorf("%w: gap cutoff %g not in (0,1]", ErrInvalidArgument, gapCutoff)
	}
	nrow, ncol := m.Size()
	if gapCutoff == 1 {
		return m.keepCols(seqRange(ncol)), nil
	}
	gapCutoffNo := int(float32(nrow) * gapCutoff)
	gapcnt := m.GapCount()
	keep := make([]int, 0, ncol)
	for i, n := range gapcnt {
		if n < gapCutoffNo {
			keep = append(keep, i)
		}
	}
	return m.keepCols(keep), nil
}

// seqRange returns 0, 1, ..., n-1
func seqRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// String prints the codes, which is only useful for debugging.
func (m *Matrix) String() (s string) {
	for _, row := range m.Mat {
		for _, c := range row {
			s += fmt.Sprintf("%3d", c)
		}
		s += "\n"
	}
	return s
}
