// 10 Feb 2025

package multimer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStoichiometry = errors.New("invalid stoichiometry")
	ErrLengthMismatch       = errors.New("chain lengths do not match alignment")
	ErrInconsistentRepeat   = errors.New("repeated chain differs")
	ErrNoSingleChain        = errors.New("row has no chain with residues")
	ErrMultipleChains       = errors.New("row has residues in more than one chain")
	ErrOutOfOrder           = errors.New("individual alignments out of order")
)

// rowError says where in the alignment things went wrong.
type rowError struct {
	row  int   // counting from 1
	kind error // one of the errors above
	desc string
}

func (e *rowError) Error() string {
	s := fmt.Sprintf("%s in row %d", e.kind, e.row)
	if e.desc != "" {
		s += ": " + e.desc
	}
	return s
}

func (e *rowError) Unwrap() error { return e.kind }

// Row gives the 1-based row of an error from this package, or 0 if the
// error is not tied to a row.
func Row(err error) int {
	var re *rowError
	if errors.As(err, &re) {
		return re.row
	}
	return 0
}

// newRowError takes a 0-based index and stores it counting from 1.
func newRowError(irow int, kind error, desc string) error {
	return &rowError{row: irow + 1, kind: kind, desc: desc}
}
