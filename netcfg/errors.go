package netcfg

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("netcfg: invalid net config")

	// ErrInvalidLevel indicates a Level that cannot describe any layout.
	ErrInvalidLevel = errors.New("netcfg: invalid level")
)
