// 18 Feb 2025

package seq_test

import (
	"errors"
	"testing"

	. "github.com/andrew-torda/neff/pkg/seq"
)

func TestWindow(t *testing.T) {
	var winTbl = []struct {
		in         []string
		start, end int
		want       string
	}{
		{[]string{"ACDEF", "AC-EF"}, 2, 4, "CDE C-E"},
		{[]string{"ACDEF", "AC-EF"}, 1, 100, "ACDEF AC-EF"},
		{[]string{"ACDEF", "AC-EF"}, 2, 100, "CDEF C-EF"},
		{[]string{"-AC-DEF", "WACWDEF"}, 2, 4, "C-DE CWDE"},
		{[]string{"-AC-DEF", "WACWDEF"}, 1, 2, "AC AC"},
		{[]string{"-AC-DEF", "WACWDEF"}, 2, 100, "C-DEF CWDEF"},
	}
	for i, tt := range winTbl {
		seqgrp := Str2SeqGrp(tt.in)
		if err := seqgrp.Window(tt.start, tt.end); err != nil {
			t.Fatal(i, err)
		}
		if got := resStr(seqgrp); got != tt.want {
			t.Fatalf("set %d got %q want %q", i, got, tt.want)
		}
	}
}

func TestWindowBad(t *testing.T) {
	for _, w := range [][2]int{{0, 3}, {7, 8}, {3, 3}, {4, 2}, {6, 7}} {
		seqgrp := Str2SeqGrp([]string{"-AC-DEF", "WACWDEF"})
		if err := seqgrp.Window(w[0], w[1]); !errors.Is(err, ErrWindow) {
			t.Errorf("window %v got %v", w, err)
		}
	}
}

func TestOmitQueryGaps(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"A-C-", "AGCW", "--C-"})
	seqgrp.OmitQueryGaps()
	if got := resStr(seqgrp); got != "AC AC -C" {
		t.Fatal("got", got)
	}
	seqgrp.OmitQueryGaps()
	if got := resStr(seqgrp); got != "AC AC -C" {
		t.Fatal("second time got", got)
	}
}

func TestCheckLengths(t *testing.T) {
	if err := Str2SeqGrp([]string{"AC", "A-"}).CheckLengths(); err != nil {
		t.Fatal(err)
	}
	if err := Str2SeqGrp([]string{"AC", "A"}).CheckLengths(); !errors.Is(err, ErrUnaligned) {
		t.Fatal("got", err)
	}
}

func TestTruncWithout(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"AA", "CC", "DD", "EE"})
	seqgrp.Truncate(0)
	if seqgrp.GetNSeq() != 4 {
		t.Fatal("truncate 0 should keep everything")
	}
	w := seqgrp.Without([]bool{false, true, false, true})
	if got := resStr(w); got != "AA DD" {
		t.Fatal("without got", got)
	}
	if seqgrp.GetNSeq() != 4 {
		t.Fatal("without changed the original")
	}
	seqgrp.Truncate(3)
	if got := resStr(seqgrp); got != "AA CC DD" {
		t.Fatal("truncate got", got)
	}
	seqgrp.Truncate(10)
	if seqgrp.GetNSeq() != 3 {
		t.Fatal("truncate past the end")
	}
}

func TestMerge(t *testing.T) {
	a := Str2SeqGrp([]string{"AC", "A-"})
	if err := a.Merge(Str2SeqGrp([]string{"AC", "CC", "A-"}, "t")); err != nil {
		t.Fatal(err)
	}
	if got := resStr(a); got != "AC A- CC" {
		t.Fatal("merge got", got)
	}
	if id := a.GetSeqSlc()[2].GetID(); id != "t1" {
		t.Fatal("merged id", id)
	}
	if err := a.Merge(Str2SeqGrp([]string{"ACD"})); !errors.Is(err, ErrUnaligned) {
		t.Fatal("length mismatch got", err)
	}
}

func TestFindNdx(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"AC", "A-", "CC"}, "seq")
	if i := seqgrp.FindNdx("> seq2"); i != 2 {
		t.Fatal("got", i)
	}
	if i := seqgrp.FindNdx("nope"); i != -1 {
		t.Fatal("got", i)
	}
}
