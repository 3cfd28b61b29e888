// 14 Feb 2025

// Package white removes white space from sequence data as it is read.
package white

import "bytes"

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func isWhite(c byte) bool { return asciiSpace[c] }

// Remove takes out all the white space in a byte slice, in place.
// The length is adjusted, but the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !isWhite(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// RemoveByBlock does the same as Remove, but moves runs of non-white
// bytes with copy.
func RemoveByBlock(sIn *[]byte) {
	s := *sIn
	n := 0
	for i := 0; i < len(s); {
		if isWhite(s[i]) {
			i++
			continue
		}
		j := i + 1
		for ; j < len(s) && !isWhite(s[j]); j++ {
		}
		n += copy(s[n:], s[i:j])
		i = j
	}
	*sIn = s[:n]
}

// RemoveByFields uses the library and allocates. It is here to compare
// against.
func RemoveByFields(sIn *[]byte) {
	*sIn = bytes.Join(bytes.Fields(*sIn), nil)
}

// ByteSlice lets us call Remove as a method.
type ByteSlice []byte

// WhiteRemove acts on a byte slice, in place and removes all the white
// space.
func (sIn *ByteSlice) WhiteRemove() {
	b := []byte(*sIn)
	Remove(&b)
	*sIn = ByteSlice(b)
}
