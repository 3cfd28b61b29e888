// 21 Feb 2025

// Package convert is the body of the converter program, which reads an
// alignment in one format and writes it in another.
package convert

import (
	"fmt"
	"io"

	"github.com/andrew-torda/neff/pkg/alphabet"
	"github.com/andrew-torda/neff/pkg/seq"
)

// CmdFlag has the command line settings.
type CmdFlag struct {
	InFile   string
	OutFile  string
	Alphabet int
	Validate bool
	DryRun   bool
}

// Mymain converts flags.InFile to flags.OutFile. The formats come from
// the file names. A one line summary goes to w.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.InFile == "" || flags.OutFile == "" {
		return fmt.Errorf("need both an input and an output file")
	}
	inFormat, err := seq.FormatOf(flags.InFile)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	outFormat, err := seq.FormatOf(flags.OutFile)
	if err != nil {
		return fmt.Errorf("output file: %w", err)
	}
	alpha, err := alphabet.New(flags.Alphabet)
	if err != nil {
		return err
	}
	s_opts := &seq.Options{Alphabet: alpha, Validate: flags.Validate, DryRun: flags.DryRun}
	seqgrp, err := seq.Readfile(flags.InFile, s_opts)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	if err := seq.WriteToF(flags.OutFile, seqgrp, s_opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "Converted %s with %d sequences from %s to %s and saved the output as %s.\n",
		flags.InFile, seqgrp.GetNSeq(), inFormat, outFormat, flags.OutFile)
	return nil
}
