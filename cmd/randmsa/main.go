// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/neff/pkg/alphabet"
	"github.com/andrew-torda/neff/pkg/randmsa"
	. "github.com/andrew-torda/neff/pkg/seq/common"
)

func main() {
	os.Exit(mymain())
}

func mymain() int {
	f := flag.NewFlagSet("randmsa", flag.ExitOnError)
	const iseed int64 = 1637
	var args randmsa.RandMSAArgs
	var ialpha int
	var mut, gapfrac float64

	f.IntVar(&ialpha, "a", 0, "alphabet 0 protein, 1 RNA, 2 DNA")
	f.BoolVar(&args.NoGap, "g", false, "do not put gaps in sequences")
	f.Float64Var(&gapfrac, "gapfrac", 0.1, "chance of a gap")
	f.Float64Var(&mut, "mut", 0.3, "chance of a mutation")
	f.BoolVar(&args.NoWhite, "w", false, "no white space inside sequences")
	f.BoolVar(&args.MkErr, "e", false, "provoke errors")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandmsa [..] file nseq length")
		f.Usage()
		return ExitUsageError
	}
	var err error
	if args.Alphabet, err = alphabet.New(ialpha); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsageError
	}
	args.MutFrac, args.GapFrac = float32(mut), float32(gapfrac)

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		return ExitFailure
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		return ExitFailure
	} else {
		args.Len = int(nlen)
	}

	fname := f.Args()[0]
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randmsa.RandMSAMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}
