// 18 Feb 2025

package seq_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/neff/pkg/seq"
	. "github.com/andrew-torda/neff/pkg/seq/common"
)

func TestFormatOf(t *testing.T) {
	var fmtTbl = []struct {
		fname string
		want  string
		ok    bool
	}{
		{"x.fasta", "fasta", true},
		{"dir.d/x.A3M", "a3m", true},
		{"x.sto.gz", "sto", true},
		{"x.clustal", "clustal", true},
		{"x", "", false},
		{"x.gz", "", false},
		{"x.txt", "", false},
	}
	for _, tt := range fmtTbl {
		got, err := FormatOf(tt.fname)
		if tt.ok != (err == nil) {
			t.Fatalf("%s: error %v", tt.fname, err)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.fname, got, tt.want)
		}
		if err != nil && !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: wrong error %v", tt.fname, err)
		}
	}
}

// TestRoundTrip writes in every format and reads the result back.
func TestRoundTrip(t *testing.T) {
	long := strings.Repeat("ACDEFGHIKL", 25)
	in := []string{"ACDEF" + long, "A-DEF" + long, "AC-EF" + long}
	for _, format := range Formats() {
		seqgrp := Str2SeqGrp(in)
		var b bytes.Buffer
		if err := seqgrp.Write(&b, format); err != nil {
			t.Fatal(format, err)
		}
		back, err := Read(&b, format, &Options{})
		if err != nil {
			t.Fatal(format, err)
		}
		if got, want := resStr(back), strings.Join(in, " "); got != want {
			t.Fatalf("%s: got %s", format, got)
		}
		if format == "aln" {
			continue
		}
		for i, s := range back.GetSeqSlc() {
			if s.GetID() != seqgrp.GetSeqSlc()[i].GetID() {
				t.Fatalf("%s: id %d came back as %q", format, i, s.GetID())
			}
		}
	}
}

func TestWriteQueryGaps(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"A-C", "AGC", "A-C"})
	var b bytes.Buffer
	if err := seqgrp.Write(&b, "a3m"); err != nil {
		t.Fatal(err)
	}
	if want := ">s0\nAC\n>s1\nAgC\n>s2\nAC\n"; b.String() != want {
		t.Fatalf("a3m got\n%s", b.String())
	}
	b.Reset()
	if err := seqgrp.Write(&b, "aln"); err != nil {
		t.Fatal(err)
	}
	if want := "AC\nAC\nAC\n"; b.String() != want {
		t.Fatalf("aln got\n%s", b.String())
	}
	back, err := Read(strings.NewReader(">s0\nAC\n>s1\nAgC\n>s2\nAC\n"), "a3m", &Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := resStr(back); got != "A-C AGC A-C" {
		t.Fatal("a3m back got", got)
	}
}

func TestWriteNoIDs(t *testing.T) {
	seqgrp, err := Read(strings.NewReader("ACD\nA-D\n"), "aln", &Options{})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := seqgrp.Write(&b, "pfam"); err != nil {
		t.Fatal(err)
	}
	if want := "sequence_1\tACD\nsequence_2\tA-D\n"; b.String() != want {
		t.Fatalf("got\n%s", b.String())
	}
	if seqgrp.GetSeqSlc()[0].GetID() != "" {
		t.Fatal("writing should not change the names")
	}
	if err := seqgrp.Write(&b, "doc"); !errors.Is(err, ErrFormat) {
		t.Fatal("bad format got", err)
	}
}

func TestReadfile(t *testing.T) {
	fname, err := WrtTemp(">q\nACD\n>s1 remark\nA-D\n", ".fa")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	seqgrp, err := Readfile(fname, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := resStr(seqgrp); got != "ACD A-D" {
		t.Fatal("got", got)
	}

	gzname := filepath.Join(t.TempDir(), "x.aln.gz")
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	zw.Write([]byte("ACD\nAAD\n"))
	zw.Close()
	if err := os.WriteFile(gzname, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if seqgrp, err = Readfile(gzname, &Options{}); err != nil {
		t.Fatal(err)
	}
	if got := resStr(seqgrp); got != "ACD AAD" {
		t.Fatal("gzipped got", got)
	}

	empty := filepath.Join(t.TempDir(), "empty.a3m")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err = Readfile(empty, &Options{}); !errors.Is(err, ErrNoSeqs) {
		t.Fatal("empty file got", err)
	}
	if _, err = Readfile(filepath.Join(t.TempDir(), "nothere.fa"), &Options{}); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	wrt := func(name, s string) string {
		fname := filepath.Join(dir, name)
		if err := os.WriteFile(fname, []byte(s), 0644); err != nil {
			t.Fatal(err)
		}
		return fname
	}
	f1 := wrt("f1.fa", ">q\nACD\n>a\nA-D\n")
	f2 := wrt("f2.fa", ">q\nACD\n>b\nAAD\n")
	f3 := wrt("f3.fa", "")
	f4 := wrt("f4.fa", ">q\nAC\n")
	f5 := wrt("f5.fa", ">q\nA-CD\n>a\nAGC-\n")

	seqgrp, err := ReadFiles([]string{f1, f3, f2}, 0, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := resStr(seqgrp); got != "ACD A-D AAD" {
		t.Fatal("merged got", got)
	}
	if seqgrp, err = ReadFiles([]string{f1, f2}, 1, &Options{}); err != nil {
		t.Fatal(err)
	}
	if n := seqgrp.GetNSeq(); n != 2 {
		t.Fatal("depth limit, got", n, "sequences")
	}
	if _, err = ReadFiles([]string{f1, f4}, 0, &Options{}); !errors.Is(err, ErrUnaligned) {
		t.Fatal("mismatch got", err)
	}
	if _, err = ReadFiles([]string{f3}, 0, &Options{}); !errors.Is(err, ErrNoSeqs) {
		t.Fatal("only empty got", err)
	}
	if seqgrp, err = ReadFiles([]string{f5, f1}, 0, &Options{OmitQueryGaps: true}); err != nil {
		t.Fatal(err)
	}
	if got := resStr(seqgrp); got != "ACD AC- A-D" {
		t.Fatal("omit query gaps got", got)
	}
}

func TestWriteToF(t *testing.T) {
	dir := t.TempDir()
	seqgrp := Str2SeqGrp([]string{"ACD", "A-D"})
	for _, name := range []string{"out.sto", "out.clustal.gz"} {
		fname := filepath.Join(dir, name)
		if err := WriteToF(fname, seqgrp, &Options{}); err != nil {
			t.Fatal(err)
		}
		back, err := Readfile(fname, &Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got := resStr(back); got != "ACD A-D" {
			t.Fatal(name, "got", got)
		}
	}
	fname := filepath.Join(dir, "dry.fa")
	if err := WriteToF(fname, seqgrp, &Options{DryRun: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(fname); err == nil {
		t.Fatal("dry run wrote a file")
	}
	if err := WriteToF(filepath.Join(dir, "x.doc"), seqgrp, &Options{}); !errors.Is(err, ErrFormat) {
		t.Fatal("bad extension got", err)
	}
}
