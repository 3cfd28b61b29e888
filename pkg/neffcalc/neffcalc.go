// 19 Feb 2025

package neffcalc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/neff/pkg/msa"
	"github.com/andrew-torda/neff/pkg/multimer"
	"github.com/andrew-torda/neff/pkg/neff"
	"github.com/andrew-torda/neff/pkg/seq"
)

// maxPos stands in for pos_end when it is not set. Window clips it.
const maxPos = int(^uint32(0) >> 1)

// prepare reads the files and does everything that happens before the
// calculation. It returns the sequences, since masking writes some of
// them out again, and the encoded matrix.
func prepare(flags *CmdFlag, st *settings) (*seq.SeqGrp, *msa.Matrix, error) {
	s_opts := &seq.Options{
		Vbsty:         flags.Vbsty,
		Alphabet:      st.alpha,
		Validate:      flags.Validate,
		OmitQueryGaps: flags.OmitQueryGaps,
	}
	seqgrp, err := seq.ReadFiles(st.files, flags.Depth, s_opts)
	if err != nil {
		return nil, nil, fmt.Errorf("Fail reading sequences: %w", err)
	}
	seqgrp.Truncate(flags.Depth)
	if flags.windowSet() {
		posEnd := flags.PosEnd
		if posEnd == 0 {
			posEnd = maxPos
		}
		if err := seqgrp.Window(flags.PosStart, posEnd); err != nil {
			return nil, nil, err
		}
	}
	m, err := msa.Encode(seqgrp.Residues(), st.alpha.Encoder(st.policy))
	if err != nil {
		return nil, nil, err
	}
	if m, err = m.RmGappy(float32(flags.GapCutoff)); err != nil {
		return nil, nil, err
	}
	if m.Empty() {
		return nil, nil, fmt.Errorf("%w: no columns left after removing gappy ones", msa.ErrEmptyInput)
	}
	return seqgrp, m, nil
}

// wrtFloats writes numbers on one line, separated by spaces.
func wrtFloats(w io.Writer, x []float64) {
	for _, v := range x {
		fmt.Fprintf(w, "%.6g ", v)
	}
	fmt.Fprintln(w)
}

// Mymain is the neff program. Results go to w.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Fprintln(w, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	st, err := checkFlags(flags)
	if err != nil {
		return err
	}
	seqgrp, m, err := prepare(flags, st)
	if err != nil {
		return err
	}
	p := &neff.Params{
		Threshold: float32(flags.Threshold),
		Symmetric: flags.Symmetric,
		NStd:      len(st.alpha.Standard()),
		Policy:    st.policy,
		Norm:      st.norm,
	}
	if flags.Vbsty > 0 {
		fmt.Fprintf(w, "Read %d sequences from %s\n", seqgrp.GetNSeq(), strings.Join(st.files, ", "))
	}
	fmt.Fprintln(w, "MSA sequence length:", m.Len())
	fmt.Fprintln(w, "MSA depth:", m.Depth())

	switch st.mode {
	case modeMultimer:
		return multimerNeff(w, m, p, st)
	case modeMask:
		return maskNeff(w, seqgrp, m, p, flags)
	}

	weight, err := p.Weights(m)
	if err != nil {
		return err
	}
	if flags.Profile != "" {
		if err := wrtProfile(flags.Profile, m, weight, st); err != nil {
			return err
		}
	}
	switch st.mode {
	case modeWeights:
		fmt.Fprintln(w, "Sequence weights:")
		wrtFloats(w, neff.Contrib(weight))
	case modeResidue:
		cols := neff.Columns(m, weight, p.Norm)
		fmt.Fprintln(w, "Per-residue (column-wise) NEFF:")
		wrtFloats(w, cols)
		fmt.Fprintf(w, "Median of per-residue (column-wise) NEFF: %.6g\n", neff.Median(cols))
	default:
		fmt.Fprintf(w, "NEFF: %.6g\n", neff.FromWeights(weight, p.Norm, m.Len()))
	}
	return nil
}

// wrtProfile writes the weighted residue fractions, one line per column.
// The first line has the letters.
func wrtProfile(fname string, m *msa.Matrix, weight []int, st *settings) (err error) {
	letters := st.alpha.Standard() + st.alpha.NonStandard()
	prof := neff.Profile(m, weight, len(letters)+1)
	neff.ProfileFrac(prof)
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("profile output file %v: %w", fname, err)
	}
	defer func() {
		if e := fp.Close(); err == nil {
			err = e
		}
	}()
	bw := bufio.NewWriter(fp)
	writeProfile(bw, prof, letters)
	return bw.Flush()
}

func writeProfile(w io.Writer, prof *matrix.FMatrix2d, letters string) {
	nrow, ncol := prof.Size()
	fmt.Fprint(w, "pos\tgap")
	for _, c := range []byte(letters) {
		fmt.Fprintf(w, "\t%c", c)
	}
	fmt.Fprintln(w)
	for icol := 0; icol < ncol; icol++ {
		fmt.Fprint(w, icol+1)
		for irow := 0; irow < nrow; irow++ {
			fmt.Fprintf(w, "\t%.4f", prof.Mat[irow][icol])
		}
		fmt.Fprintln(w)
	}
}

// multimerNeff does the whole alignment, then the pieces.
func multimerNeff(w io.Writer, m *msa.Matrix, p *neff.Params, st *settings) error {
	whole, err := p.Neff(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "NEFF of entire MSA: %.6g\n", whole)
	if st.stoich.IsHomomer {
		indiv, err := st.stoich.Homomer(m)
		if err != nil {
			return err
		}
		x, err := p.Neff(indiv)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "NEFF of Individual MSA: %.6g\n", x)
		return nil
	}

	sets, err := st.stoich.Heteromer(m, st.chainLens)
	if err != nil {
		return err
	}
	x, err := p.Neff(sets.Paired)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "NEFF of Paired MSA (depth=%d): %.6g\n", sets.Paired.Depth(), x)
	for i, chain := range sets.PerChain {
		letter := multimer.ChainLetter(i)
		if chain.Depth() == 0 {
			fmt.Fprintf(w, "Chain %s does not have an individual MSA, skipping NEFF calculation...\n", letter)
			continue
		}
		if x, err = p.Neff(chain); err != nil {
			return fmt.Errorf("chain %s: %w", letter, err)
		}
		fmt.Fprintf(w, "NEFF of Individual MSA for Chain %s (depth=%d): %.6g\n", letter, chain.Depth()-1, x)
	}
	return nil
}

// maskNames gives the two files written when masking. Without a prefix,
// they go next to the first input file.
func maskNames(flags *CmdFlag) (neffs, masked string) {
	prefix := flags.MaskOut
	if prefix == "" {
		first := splitList(flags.Files)[0]
		first = strings.TrimSuffix(first, ".gz")
		prefix = strings.TrimSuffix(first, filepath.Ext(first))
	}
	return prefix + "_mask_neff.txt", prefix + "_masked.fasta"
}

// maskNeff does the masking rounds and saves the results.
func maskNeff(w io.Writer, seqgrp *seq.SeqGrp, m *msa.Matrix, p *neff.Params, flags *CmdFlag) error {
	initial, err := p.Neff(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Initial NEFF: %.6g\n", initial)
	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	startTime := time.Now()
	res, err := neff.MaskedNeff(m, p, float32(flags.MaskFrac), flags.MaskCount, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)
	fmt.Fprintf(w, "NEFF after %d mask iterations, highest value: %.6g (iteration %d)\n",
		flags.MaskCount, res.BestNeff(), res.Best+1)

	neffName, maskedName := maskNames(flags)
	if err := wrtNeffs(neffName, res.Neffs); err != nil {
		return err
	}
	drop := make([]bool, seqgrp.GetNSeq())
	for _, i := range res.Excluded {
		drop[i] = true
	}
	if err := seq.WriteToF(maskedName, seqgrp.Without(drop), &seq.Options{}); err != nil {
		return err
	}
	fmt.Fprintf(w, "NEFF values for each mask iteration have been saved in '%s'\n", neffName)
	fmt.Fprintf(w, "Masked MSA file corresponding to the highest NEFF value has been saved in '%s'\n", maskedName)
	fmt.Fprintf(w, "NEFF computation: %.3f seconds\n", elapsed.Seconds())
	return nil
}

// wrtNeffs writes one number per line.
func wrtNeffs(fname string, neffs []float64) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("mask NEFF file %v: %w", fname, err)
	}
	defer func() {
		if e := fp.Close(); err == nil {
			err = e
		}
	}()
	bw := bufio.NewWriter(fp)
	for _, x := range neffs {
		fmt.Fprintf(bw, "%.6g\n", x)
	}
	return bw.Flush()
}
