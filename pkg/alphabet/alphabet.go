// 2 Feb 2025

// Package alphabet has the letter tables for protein, RNA and DNA
// alignments and the mapping from letters to the small integers used
// in all the calculations.
// A code of 0 is a gap. Standard letters get 1..n in the order of the
// table. Non-standard letters follow after that, if the policy lets
// them be residues at all.
package alphabet

import (
	"fmt"

	. "github.com/andrew-torda/neff/pkg/seq/common"
)

// Alphabet says what kind of sequences we have.
type Alphabet byte

const (
	Protein Alphabet = iota
	RNA
	DNA
)

const (
	stdProtein    = "ACDEFGHIKLMNPQRSTVWY"
	nonStdProtein = "XOUBJZ"
	stdRNA        = "AUCG"
	stdDNA        = "ATCG"
	nonStdNtide   = "N"
	gapLetters    = "-."
)

// NonStandard is the policy for letters like X in proteins or N in
// nucleotides.
type NonStandard byte

const (
	AsStandard          NonStandard = iota // residues like any other
	ConsiderGapInCutoff                    // residues, but gaps when counting a sequence's length
	ConsiderGap                            // gaps everywhere
)

// New converts the number used on the command line to an Alphabet.
func New(i int) (Alphabet, error) {
	if i < int(Protein) || i > int(DNA) {
		return Protein, fmt.Errorf("invalid alphabet value %d. Must be 0 (protein), 1 (RNA) or 2 (DNA)", i)
	}
	return Alphabet(i), nil
}

// NewNonStandard converts the number used on the command line to a policy.
func NewNonStandard(i int) (NonStandard, error) {
	if i < int(AsStandard) || i > int(ConsiderGap) {
		return AsStandard, fmt.Errorf("invalid non-standard option %d. Must be 0, 1 or 2", i)
	}
	return NonStandard(i), nil
}

// String
func (a Alphabet) String() string {
	switch a {
	case Protein:
		return "protein"
	case RNA:
		return "RNA"
	case DNA:
		return "DNA"
	}
	return "unknown"
}

// String
func (n NonStandard) String() string {
	switch n {
	case AsStandard:
		return "AsStandard"
	case ConsiderGapInCutoff:
		return "ConsiderGapInCutoff"
	case ConsiderGap:
		return "ConsiderGap"
	}
	return "unknown"
}

// Standard returns the standard letters of an alphabet.
func (a Alphabet) Standard() string {
	switch a {
	case Protein:
		return stdProtein
	case RNA:
		return stdRNA
	case DNA:
		return stdDNA
	}
	return ""
}

// NonStandard returns the letters which are valid, but not standard.
func (a Alphabet) NonStandard() string {
	switch a {
	case Protein:
		return nonStdProtein
	case RNA, DNA:
		return nonStdNtide
	}
	return ""
}

// Allowed returns every letter that may appear in a valid alignment,
// gaps included.
func (a Alphabet) Allowed() string {
	return a.Standard() + a.NonStandard() + gapLetters
}

// Encoder maps bytes to residue codes. Build one with NewEncoder and
// use it for every sequence in an alignment.
type Encoder struct {
	mapping [256]uint8
	nStd    int
	policy  NonStandard
}

// NewEncoder sets up the lookup table for a set of standard and
// non-standard letters and a policy.
// Anything not in the table becomes a gap. This is on purpose. If you
// want to complain about funny letters, validate the sequences first.
func NewEncoder(standard, nonStandard string, policy NonStandard) *Encoder {
	e := &Encoder{nStd: len(standard), policy: policy}
	if policy == AsStandard || policy == ConsiderGapInCutoff {
		for i := len(nonStandard) - 1; i >= 0; i-- { // walk backwards so the
			e.mapping[nonStandard[i]] = uint8(len(standard) + 1 + i) // first copy wins
		}
	}
	for i := len(standard) - 1; i >= 0; i-- {
		e.mapping[standard[i]] = uint8(1 + i)
	}
	e.mapping[GapChar] = 0
	e.mapping[DotChar] = 0
	return e
}

// Encoder returns the encoder for an alphabet and policy.
func (a Alphabet) Encoder(policy NonStandard) *Encoder {
	return NewEncoder(a.Standard(), a.NonStandard(), policy)
}

// NStd is the number of standard letters. Codes above this are non-standard.
func (e *Encoder) NStd() int { return e.nStd }

// Policy
func (e *Encoder) Policy() NonStandard { return e.policy }

// Code returns the code for one character.
func (e *Encoder) Code(c byte) uint8 { return e.mapping[c] }

// Encode fills dst with the codes for s. dst must be at least as long
// as s. It returns dst cut to the length of s.
func (e *Encoder) Encode(s []byte, dst []uint8) []uint8 {
	dst = dst[:len(s)]
	for i, c := range s {
		dst[i] = e.mapping[c]
	}
	return dst
}
