package batch

import "errors"

var (
	// ErrInvalidPlan indicates a Plan or Suite that cannot be run.
	ErrInvalidPlan = errors.New("batch: invalid plan")
	// ErrNoCases indicates a suite directory without router-input files.
	ErrNoCases = errors.New("batch: no case files")
)
