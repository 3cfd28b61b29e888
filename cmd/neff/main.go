// 20 Feb 2025
// Read alignments and calculate NEFF.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/neff/pkg/neffcalc"
	. "github.com/andrew-torda/neff/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-file=alignment[,alignment...] [flags]")
	flag.PrintDefaults()
}

func mymain() int {
	flags := neffcalc.Defaults()
	flag.StringVar(&flags.Files, "file", "", "comma separated alignment files")
	flag.IntVar(&flags.Alphabet, "alphabet", 0, "0 protein, 1 RNA, 2 DNA")
	flag.BoolVar(&flags.Validate, "check_validation", false, "check letters belong to the alphabet")
	flag.Float64Var(&flags.Threshold, "threshold", flags.Threshold, "identity for sequences to be similar")
	flag.IntVar(&flags.Norm, "norm", 0, "normalization 0 sqrt(L), 1 L, 2 none")
	flag.BoolVar(&flags.OmitQueryGaps, "omit_query_gaps", flags.OmitQueryGaps, "drop columns with gaps in the query")
	flag.BoolVar(&flags.Symmetric, "is_symmetric", flags.Symmetric, "one similarity cutoff for all sequences")
	flag.IntVar(&flags.NonStd, "non_standard_option", 0, "non-standard letters 0 as standard, 1 gap in cutoff, 2 gap")
	flag.IntVar(&flags.Depth, "depth", 0, "use only this many sequences, 0 for all")
	flag.Float64Var(&flags.GapCutoff, "gap_cutoff", flags.GapCutoff, "remove columns with this fraction of gaps")
	flag.IntVar(&flags.PosStart, "pos_start", flags.PosStart, "first query position to use")
	flag.IntVar(&flags.PosEnd, "pos_end", 0, "last query position to use, 0 for the end")
	flag.BoolVar(&flags.OnlyWeights, "only_weights", false, "print sequence weights")
	flag.BoolVar(&flags.ResidueNeff, "residue_neff", false, "print NEFF per column")
	flag.BoolVar(&flags.Multimer, "multimer_MSA", false, "multimer alignment")
	flag.StringVar(&flags.Stoichiom, "stoichiom", "", "stoichiometry like A2 or A2B1")
	flag.StringVar(&flags.ChainLength, "chain_length", "", "comma separated chain lengths for heteromers")
	flag.BoolVar(&flags.MaskEnabled, "mask_enabled", false, "NEFF with random masking")
	flag.IntVar(&flags.MaskCount, "mask_count", 0, "number of masking iterations")
	flag.Float64Var(&flags.MaskFrac, "mask_frac", 0, "fraction of sequences to mask")
	flag.StringVar(&flags.MaskOut, "mask_out", "", "prefix for masking output files")
	flag.Int64Var(&flags.Seed, "seed", 0, "seed for masking, 0 for the clock")
	flag.StringVar(&flags.Profile, "profile", "", "file for weighted residue profile")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "unexpected arguments", flag.Args())
		usage()
		return ExitUsageError
	}
	if err := neffcalc.Mymain(&flags, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
