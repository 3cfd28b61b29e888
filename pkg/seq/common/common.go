// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	GapChar byte = '-' // a minus sign is what we write for gaps
	DotChar byte = '.' // some formats use a dot for gaps in insert columns
)

// IsGap says if a character is one of the gap symbols
func IsGap(c byte) bool { return c == GapChar || c == DotChar }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// An optional suffix lets the caller give the file an extension, since
// the alignment format is guessed from the extension.
func WrtTemp(s string, suffix ...string) (string, error) {
	pattern := "_del_me_testing"
	if suffix != nil {
		pattern += "*" + suffix[0]
	}
	f_tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
