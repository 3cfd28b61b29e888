package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/neff/pkg/seq/brokenio"
)

const longstring = "0123456789012345678901234567890123456789"

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 7, 39} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
		rdr.SetFailAfter(n)
		b, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal("fail after", n, "got", err)
		}
		if string(b) != longstring[:n] || rdr.NByte() != n {
			t.Fatalf("fail after %d got %q", n, b)
		}
	}
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetFailAfter(100)
	if b, err := io.ReadAll(rdr); err != nil || string(b) != longstring {
		t.Fatal("should have read everything, got", err)
	}
}

func TestZeroFile(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbZeroFile(1)
	b, err := io.ReadAll(rdr)
	if err != nil || len(b) != 0 {
		t.Fatal("want empty read, got", len(b), err)
	}
}

func TestProbFail(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbFail(1)
	p := make([]byte, 4)
	n, err := rdr.Read(p)
	if n != 4 || !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("got", n, err)
	}
	rdr = brokenio.NewReader(strings.NewReader(longstring), 1)
	if b, err := io.ReadAll(rdr); err != nil || string(b) != longstring {
		t.Fatal("plain reader broke", err)
	}
}
