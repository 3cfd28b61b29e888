// 19 Feb 2025

// Package neffcalc is the body of the neff program. It checks the
// command line, reads the alignments, does the calculation that was asked
// for and prints the results.
package neffcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/neff/pkg/alphabet"
	"github.com/andrew-torda/neff/pkg/multimer"
	"github.com/andrew-torda/neff/pkg/neff"
)

// ErrFlags is wrapped by every complaint about the command line.
var ErrFlags = errors.New("bad flags")

// CmdFlag has everything from the command line.
type CmdFlag struct {
	Files         string // comma separated list of alignment files
	Alphabet      int
	Validate      bool
	Threshold     float64 // fraction identity for two sequences to be similar
	Norm          int
	OmitQueryGaps bool
	Symmetric     bool
	NonStd        int     // policy for non-standard letters
	Depth         int     // use only the first Depth sequences, 0 for all
	GapCutoff     float64 // remove columns with at least this fraction of gaps
	PosStart      int
	PosEnd        int // 0 means the end of the query
	OnlyWeights   bool
	ResidueNeff   bool
	Multimer      bool
	Stoichiom     string
	ChainLength   string // comma separated, for heteromers
	MaskEnabled   bool
	MaskCount     int
	MaskFrac      float64
	MaskOut       string // prefix for masking output files
	Seed          int64  // for masking, 0 means seed from the clock
	Profile       string // file for the weighted residue profile
	Time          bool
	Vbsty         int
}

// Defaults returns the flags as they are before the command line is
// looked at.
func Defaults() CmdFlag {
	return CmdFlag{
		Threshold:     0.8,
		OmitQueryGaps: true,
		Symmetric:     true,
		GapCutoff:     1,
		PosStart:      1,
	}
}

// mode is the one calculation we are going to do.
type mode byte

const (
	modeNeff mode = iota
	modeWeights
	modeResidue
	modeMultimer
	modeMask
)

// settings are the flags after checking and converting.
type settings struct {
	files     []string
	alpha     alphabet.Alphabet
	policy    alphabet.NonStandard
	norm      neff.Normalization
	mode      mode
	stoich    *multimer.Stoichiometry
	chainLens []int
}

// splitList breaks a comma separated list and drops empty entries.
func splitList(s string) []string {
	var r []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			r = append(r, f)
		}
	}
	return r
}

// chainLengths reads a list like "120,85".
func chainLengths(s string) ([]int, error) {
	const emsg = "%w: for a heteromer, chain_length should be a list of positive numbers, not \"%s\""
	var r []int
	for _, f := range splitList(s) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf(emsg, ErrFlags, s)
		}
		r = append(r, n)
	}
	if len(r) == 0 {
		return nil, fmt.Errorf(emsg, ErrFlags, s)
	}
	return r, nil
}

// windowSet is true if the user asked for anything but the whole query.
func (flags *CmdFlag) windowSet() bool { return flags.PosStart != 1 || flags.PosEnd != 0 }

// checkFlags makes sure the flags make sense together and converts the
// numbers to their types.
func checkFlags(flags *CmdFlag) (*settings, error) {
	var err error
	st := new(settings)
	if st.files = splitList(flags.Files); len(st.files) == 0 {
		return nil, fmt.Errorf("%w: no input file. Give one with -file", ErrFlags)
	}
	if st.alpha, err = alphabet.New(flags.Alphabet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlags, err)
	}
	if st.policy, err = alphabet.NewNonStandard(flags.NonStd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlags, err)
	}
	if st.norm, err = neff.NewNormalization(flags.Norm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlags, err)
	}
	if !(flags.Threshold > 0 && flags.Threshold <= 1) {
		return nil, fmt.Errorf("%w: threshold %g must be more than 0 and not more than 1", ErrFlags, flags.Threshold)
	}
	if !(flags.GapCutoff > 0 && flags.GapCutoff <= 1) {
		return nil, fmt.Errorf("%w: gap_cutoff %g must be more than 0 and not more than 1", ErrFlags, flags.GapCutoff)
	}
	if flags.Depth < 0 {
		return nil, fmt.Errorf("%w: depth %d is negative", ErrFlags, flags.Depth)
	}

	nmode := 0
	for _, m := range []struct {
		on   bool
		mode mode
	}{
		{flags.OnlyWeights, modeWeights},
		{flags.ResidueNeff, modeResidue},
		{flags.Multimer, modeMultimer},
		{flags.MaskEnabled, modeMask},
	} {
		if m.on {
			nmode++
			st.mode = m.mode
		}
	}
	if nmode > 1 {
		return nil, fmt.Errorf("%w: only one of only_weights, residue_neff, multimer_MSA or mask_enabled can be set", ErrFlags)
	}

	switch st.mode {
	case modeMultimer:
		if flags.Stoichiom == "" {
			return nil, fmt.Errorf("%w: multimer_MSA needs stoichiom", ErrFlags)
		}
		if st.stoich, err = multimer.Parse(flags.Stoichiom); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFlags, err)
		}
		if !st.stoich.IsHomomer {
			if st.chainLens, err = chainLengths(flags.ChainLength); err != nil {
				return nil, err
			}
		}
		if !flags.OmitQueryGaps || flags.GapCutoff != 1 || flags.windowSet() {
			const emsg = "%w: with multimer_MSA, omit_query_gaps, gap_cutoff, pos_start and pos_end must stay at their defaults"
			return nil, fmt.Errorf(emsg, ErrFlags)
		}
	case modeMask:
		if flags.MaskCount < 1 {
			return nil, fmt.Errorf("%w: when masking, mask_count must be a positive number", ErrFlags)
		}
		if !(flags.MaskFrac > 0 && flags.MaskFrac < 1) {
			return nil, fmt.Errorf("%w: when masking, mask_frac should be a number between 0 and 1", ErrFlags)
		}
	}
	if flags.Profile != "" && (st.mode == modeMultimer || st.mode == modeMask) {
		return nil, fmt.Errorf("%w: profile cannot be combined with multimer_MSA or mask_enabled", ErrFlags)
	}
	return st, nil
}
