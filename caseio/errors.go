package caseio

import "errors"

var (
	// ErrMalformed indicates input that does not follow the case format.
	ErrMalformed = errors.New("caseio: malformed case")

	// ErrInconsistent indicates a well-formed case whose contents disagree:
	// totals that do not add up or coordinates outside the grid.
	ErrInconsistent = errors.New("caseio: inconsistent case")
)
