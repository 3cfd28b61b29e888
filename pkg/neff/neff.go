// 4 Feb 2025

package neff

import (
	"fmt"
	"math"
	"sort"

	"github.com/andrew-torda/neff/pkg/alphabet"
	"github.com/andrew-torda/neff/pkg/msa"
)

// Normalization says what NEFF is divided by.
type Normalization byte

const (
	SqrtL Normalization = iota // square root of alignment length
	L                          // alignment length
	None                       // leave it alone
)

// NewNormalization converts the number used on the command line.
func NewNormalization(i int) (Normalization, error) {
	if i < int(SqrtL) || i > int(None) {
		return SqrtL, fmt.Errorf("invalid normalization %d. Must be 0 (sqrt L), 1 (L) or 2 (none)", i)
	}
	return Normalization(i), nil
}

// normalize divides x according to norm. length is the full alignment
// length, even when x belongs to a single column.
func normalize(x float64, norm Normalization, length int) float64 {
	switch norm {
	case SqrtL:
		return x / math.Sqrt(float64(length))
	case L:
		return x / float64(length)
	}
	return x
}

// Contrib returns 1/weight for each sequence. These are the numbers
// printed when someone only wants weights.
func Contrib(weight []int) []float64 {
	r := make([]float64, len(weight))
	for i, w := range weight {
		r[i] = 1. / float64(w)
	}
	return r
}

// FromWeights sums 1/weight and normalizes.
func FromWeights(weight []int, norm Normalization, length int) float64 {
	var neff float64
	for _, w := range weight {
		neff += 1. / float64(w)
	}
	return normalize(neff, norm, length)
}

// Columns returns NEFF for each column. Only sequences with a residue in
// the column contribute. Every column is normalized by the full length.
func Columns(m *msa.Matrix, weight []int, norm Normalization) []float64 {
	length := m.Len()
	colneff := make([]float64, length)
	for irow, row := range m.Mat {
		f := 1. / float64(weight[irow])
		for icol, c := range row {
			if c != 0 {
				colneff[icol] += f
			}
		}
	}
	for i := range colneff {
		colneff[i] = normalize(colneff[i], norm, length)
	}
	return colneff
}

// Median of a slice. The slice is not changed. Zero for no values.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 0 {
		return (s[n/2-1] + s[n/2]) / 2
	}
	return s[n/2]
}

// Params are the choices which stay the same for every NEFF calculation
// in one run.
type Params struct {
	Threshold float32 // fraction identity for two sequences to be similar
	Symmetric bool
	NStd      int // number of standard letters in the alphabet
	Policy    alphabet.NonStandard
	Norm      Normalization
}

// Weights calls Weights with the parameters
func (p *Params) Weights(m *msa.Matrix) ([]int, error) {
	return Weights(m, p.Threshold, p.Symmetric, p.NStd, p.Policy)
}

// Neff is the whole calculation, weights then the sum.
func (p *Params) Neff(m *msa.Matrix) (float64, error) {
	weight, err := p.Weights(m)
	if err != nil {
		return 0, err
	}
	return FromWeights(weight, p.Norm, m.Len()), nil
}
