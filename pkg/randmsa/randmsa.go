// 31 July 2020

// Package randmsa writes random alignments in fasta format for testing
// and benchmarking. The first sequence is random and the rest are
// mutated copies of it, so there are families of similar sequences.
package randmsa

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/neff/pkg/alphabet"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// RandMSAArgs is the set of arguments passed to the main function
type RandMSAArgs struct {
	Iseed    int64     // random number seed
	Wrtr     io.Writer // where we write to
	Cmmt     string    // Comment for the sequences
	Nseq     int       // number of sequences
	Len      int       // Length of sequences
	Alphabet alphabet.Alphabet
	MutFrac  float32 // chance of changing a residue from the query
	GapFrac  float32 // chance of a gap
	NoGap    bool    // Do not add gaps
	NoWhite  bool    // Do not scatter white space in the sequences
	MkErr    bool    // Add an error, by changing a length
}

// getquery returns a random sequence without gaps.
func getquery(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// mutate returns a changed copy of the query, with room at the end for
// white space.
func mutate(query, letters []byte, args *RandMSAArgs, rnd *rand.Rand) []byte {
	space := len(query) + (len(query) / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, len(query), space)
	for i, c := range query {
		switch {
		case !args.NoGap && rnd.Float32() < args.GapFrac:
			ret[i] = '-'
		case rnd.Float32() < args.MutFrac:
			ret[i] = letters[rnd.Intn(len(letters))]
		default:
			ret[i] = c
		}
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if spacernd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes byte slices which are our sequences. It adds a comment
// and writes them. The output has comment lines "> something 1, >
// something 2..."
func writeseq(sChan <-chan []byte, args *RandMSAArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *err != nil {
			continue
		}
		if !args.NoWhite {
			s = addspace(s, spacernd)
		}
		tmp := fmt.Sprintf(">%s %[2]*d\n", args.Cmmt, width, i)
		if _, e := io.WriteString(args.Wrtr, tmp); e != nil {
			*err = e
			continue
		}
		if _, e := args.Wrtr.Write(append(s, '\n')); e != nil {
			*err = e
		}
	}
}

// RandMSAMain writes a random alignment to an io.Writer.
func RandMSAMain(args *RandMSAArgs) error {
	if args.Nseq < 1 || args.Len < 1 {
		return errors.New("need at least one sequence of length at least one")
	}
	letters := []byte(args.Alphabet.Standard())
	rnd := rand.New(rand.NewSource(args.Iseed))
	query := getquery(args.Len, letters, rnd)

	var wg sync.WaitGroup
	var werr error
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &werr)
	sChan <- append(make([]byte, 0, len(query)+len(query)/nPadWhite), query...)
	for i := 1; i < args.Nseq; i++ {
		s := mutate(query, letters, args, rnd)
		if args.MkErr && i == args.Nseq-1 {
			s = s[:len(s)-1]
		}
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return werr
}
