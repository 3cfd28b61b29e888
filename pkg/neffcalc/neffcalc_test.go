// 20 Feb 2025

package neffcalc_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/neff/pkg/multimer"
	. "github.com/andrew-torda/neff/pkg/neffcalc"
	"github.com/andrew-torda/neff/pkg/seq"
)

// Length 10, so with threshold 0.8 two sequences are similar if they
// differ at one place or less. s1 and s2 are similar, s3 is like nothing.
const threeSeqs = `>s1
ACDEFGHIKL
>s2
ACDEFGHIKW
>s3
WYVTSRQPN-
`

func wrtFile(t *testing.T, name, s string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

// run calls Mymain and returns what it printed.
func run(t *testing.T, flags *CmdFlag) string {
	t.Helper()
	var b bytes.Buffer
	if err := Mymain(flags, &b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func hasLines(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w+"\n") {
			t.Fatalf("output missing %q. Got\n%s", w, got)
		}
	}
}

func TestNeff(t *testing.T) {
	fname := wrtFile(t, "three.fa", threeSeqs)
	var normTbl = []struct {
		norm int
		want string
	}{
		{2, "NEFF: 2"},
		{1, "NEFF: 0.2"},
	}
	for _, tt := range normTbl {
		flags := Defaults()
		flags.Files, flags.Norm = fname, tt.norm
		hasLines(t, run(t, &flags), "MSA sequence length: 10", "MSA depth: 3", tt.want)
	}
}

func TestWeights(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "three.a2m", threeSeqs)
	flags.OnlyWeights = true
	hasLines(t, run(t, &flags), "Sequence weights:", "0.5 0.5 1 ")
}

func TestResidue(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "three.fa", threeSeqs)
	flags.ResidueNeff, flags.Norm = true, 2
	hasLines(t, run(t, &flags),
		"Per-residue (column-wise) NEFF:",
		"2 2 2 2 2 2 2 2 2 1 ",
		"Median of per-residue (column-wise) NEFF: 2")
}

func TestDepthWindow(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "three.fa", threeSeqs)
	flags.Depth, flags.PosStart, flags.PosEnd = 2, 2, 4
	hasLines(t, run(t, &flags), "MSA sequence length: 3", "MSA depth: 2")

	flags.PosStart, flags.PosEnd = 10, 12
	var b bytes.Buffer
	if err := Mymain(&flags, &b); !errors.Is(err, seq.ErrWindow) {
		t.Fatal("bad window got", err)
	}
}

// The last column has two gaps out of four, so it goes with a cutoff
// of 0.5.
func TestGapCutoff(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "four.fa", ">a\nACDE\n>b\nACD-\n>c\nAC-E\n>d\nWWW-\n")
	flags.GapCutoff = 0.5
	hasLines(t, run(t, &flags), "MSA sequence length: 3")
}

// Several files are merged and the repeated query is only kept once.
func TestFiles(t *testing.T) {
	f1 := wrtFile(t, "a.fa", ">q\nACDEFGHIKL\n>b\nACDEFGHIKW\n")
	f2 := wrtFile(t, "b.sto", "# STOCKHOLM 1.0\nq ACDEFGHIKL\nc WYVTSRQPN-\n//\n")
	flags := Defaults()
	flags.Files, flags.Norm = f1+","+f2, 2
	hasLines(t, run(t, &flags), "MSA depth: 3", "NEFF: 2")
}

func TestHomomer(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "homo.fa", ">q\nACDEFACDEF\n>s\nACDEWACDEW\n")
	flags.Multimer, flags.Stoichiom, flags.Norm = true, "A2", 2
	hasLines(t, run(t, &flags), "NEFF of entire MSA: 2", "NEFF of Individual MSA: 2")
}

func TestHeteromer(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "hetero.fa", ">q\nACDEF\n>a\nACD--\n>b\n---EF\n")
	flags.Multimer, flags.Stoichiom, flags.ChainLength, flags.Norm = true, "A1B1", "3,2", 2
	hasLines(t, run(t, &flags),
		"NEFF of entire MSA: 3",
		"NEFF of Paired MSA (depth=1): 1",
		"NEFF of Individual MSA for Chain A (depth=1): 1",
		"NEFF of Individual MSA for Chain B (depth=1): 1")

	flags.Files = wrtFile(t, "hetero2.fa", ">q\nACDEF\n>a\nACD--\n")
	hasLines(t, run(t, &flags),
		"NEFF of Individual MSA for Chain A (depth=1): 1",
		"Chain B does not have an individual MSA, skipping NEFF calculation...")

	flags.ChainLength = "3,3"
	var b bytes.Buffer
	if err := Mymain(&flags, &b); !errors.Is(err, multimer.ErrLengthMismatch) {
		t.Fatal("chain lengths got", err)
	}
}

func TestMask(t *testing.T) {
	in := threeSeqs + ">s4\nACDEFGHIYY\n>s5\nMMMMMGHIKL\n"
	flags := Defaults()
	flags.Files = wrtFile(t, "five.fa", in)
	flags.MaskEnabled, flags.MaskCount, flags.MaskFrac, flags.Seed = true, 3, 0.5, 1
	flags.MaskOut = filepath.Join(t.TempDir(), "out")
	got := run(t, &flags)
	neffName, maskedName := MaskNames(&flags)
	hasLines(t, got,
		"MSA depth: 5",
		"NEFF values for each mask iteration have been saved in '"+neffName+"'",
		"Masked MSA file corresponding to the highest NEFF value has been saved in '"+maskedName+"'")
	for _, w := range []string{"Initial NEFF: ", "highest value: ", "NEFF computation: "} {
		if !strings.Contains(got, w) {
			t.Fatalf("missing %q in\n%s", w, got)
		}
	}
	b, err := os.ReadFile(neffName)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "\n"); n != 3 {
		t.Fatal("want 3 NEFF values, got", n)
	}
	masked, err := seq.Readfile(maskedName, &seq.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if masked.GetNSeq() != 3 || masked.GetSeqSlc()[0].GetID() != "s1" {
		t.Fatal("masked file has", masked.GetNSeq(), "sequences, first", masked.GetSeqSlc()[0].GetID())
	}
}

func TestMaskNames(t *testing.T) {
	flags := Defaults()
	flags.Files = "dir/x.a3m.gz,y.fa"
	a, b := MaskNames(&flags)
	if a != "dir/x_mask_neff.txt" || b != "dir/x_masked.fasta" {
		t.Fatal("got", a, b)
	}
}

func TestProfile(t *testing.T) {
	flags := Defaults()
	flags.Files = wrtFile(t, "three.fa", threeSeqs)
	flags.Profile = filepath.Join(t.TempDir(), "prof.txt")
	run(t, &flags)
	b, err := os.ReadFile(flags.Profile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 11 {
		t.Fatal("want header and 10 columns, got", len(lines), "lines")
	}
	if !strings.HasPrefix(lines[0], "pos\tgap\tA\tC\tD") {
		t.Fatal("header", lines[0])
	}
	if f := strings.Split(lines[1], "\t"); len(f) != 2+26 || f[2] != "0.5000" {
		t.Fatal("first column", lines[1])
	}
}

func TestCheckFlags(t *testing.T) {
	ok := Defaults()
	ok.Files = "x.fa"
	if err := CheckFlags(&ok); err != nil {
		t.Fatal(err)
	}
	bad := []func(f *CmdFlag){
		func(f *CmdFlag) { f.Files = " , " },
		func(f *CmdFlag) { f.Alphabet = 3 },
		func(f *CmdFlag) { f.Norm = -1 },
		func(f *CmdFlag) { f.NonStd = 3 },
		func(f *CmdFlag) { f.Threshold = 0 },
		func(f *CmdFlag) { f.GapCutoff = 1.5 },
		func(f *CmdFlag) { f.Depth = -1 },
		func(f *CmdFlag) { f.OnlyWeights, f.ResidueNeff = true, true },
		func(f *CmdFlag) { f.Multimer, f.MaskEnabled = true, true },
		func(f *CmdFlag) { f.Multimer = true },
		func(f *CmdFlag) { f.Multimer, f.Stoichiom = true, "A2B1" },
		func(f *CmdFlag) { f.Multimer, f.Stoichiom, f.ChainLength = true, "A2B1", "3,x" },
		func(f *CmdFlag) { f.Multimer, f.Stoichiom, f.GapCutoff = true, "A2", 0.5 },
		func(f *CmdFlag) { f.Multimer, f.Stoichiom, f.PosStart = true, "A2", 2 },
		func(f *CmdFlag) { f.Multimer, f.Stoichiom, f.OmitQueryGaps = true, "A2", false },
		func(f *CmdFlag) { f.MaskEnabled, f.MaskFrac = true, 0.5 },
		func(f *CmdFlag) { f.MaskEnabled, f.MaskCount, f.MaskFrac = true, 2, 1 },
		func(f *CmdFlag) { f.MaskEnabled, f.MaskCount, f.MaskFrac, f.Profile = true, 2, 0.1, "p" },
	}
	for i, change := range bad {
		flags := ok
		change(&flags)
		if err := CheckFlags(&flags); !errors.Is(err, ErrFlags) {
			t.Errorf("case %d got %v", i, err)
		}
	}
	flags := ok
	flags.Multimer, flags.Stoichiom = true, "B1A2"
	if err := CheckFlags(&flags); !errors.Is(err, multimer.ErrInvalidStoichiometry) {
		t.Error("out of order stoichiometry got", err)
	}
}
