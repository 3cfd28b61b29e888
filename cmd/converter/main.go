// 21 Feb 2025

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/neff/pkg/convert"
	. "github.com/andrew-torda/neff/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-in_file=infile -out_file=outfile [flags]")
	flag.PrintDefaults()
}

func main() {
	var flags convert.CmdFlag
	flag.StringVar(&flags.InFile, "in_file", "", "input alignment")
	flag.StringVar(&flags.OutFile, "out_file", "", "output alignment")
	flag.IntVar(&flags.Alphabet, "alphabet", 0, "0 protein, 1 RNA, 2 DNA")
	flag.BoolVar(&flags.Validate, "check_validation", true, "check letters belong to the alphabet")
	flag.BoolVar(&flags.DryRun, "n", false, "dry run, do not write anything")
	flag.Usage = usage
	flag.Parse()
	if flags.InFile == "" || flags.OutFile == "" {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := convert.Mymain(&flags, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
