// 22 Feb 2025

// Package brokenio wraps a reader so that it fails. It lets us check
// that readers pass errors back and do not just stop.
// A Reader can pretend the file is empty, fail after a certain number of
// bytes or fail at random.
package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a failed Read returns.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader is modelled on the readers in the standard library, but with
// settings for how often errors happen. Probabilities go from 0 to 1,
// so 0.05 means failure in 5 % of calls.
type Reader struct {
	rdr          io.Reader // wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // chance of nothing at all on the first read
	probFail     float32
	failAfter    int // fail once this many bytes have gone through, -1 for never
	nCalled      int
	nByte        int
}

// NewReader wraps rIn. Until something is set, it behaves like rIn.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{rdr: rIn, rnd: rand.New(rand.NewSource(seed)), failAfter: -1}
}

// SetProbZeroFile sets how often the first read returns nothing and
// io.EOF, which is what one sees with an empty file.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the chance of a read failing.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reads fail after n bytes.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// NByte is how much data has gone through.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader. A random failure still hands back
// whatever was read, along with the error.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return n, ErrBroken
	}
	return n, err
}
