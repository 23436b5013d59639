package genotypefasta

import "errors"

// Failures a caller may need to tell apart are returned wrapping one of these
// with fmt.Errorf's %w. Other errors, from I/O and decompression, are returned
// through pfx.Err, which prefixes the failing function's name.
var (
	ErrInputUnreadable  = errors.New("input missing or unreadable")
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnrecognizedCall = errors.New("unrecognized genotype call")
	ErrOutputWrite      = errors.New("output write failed")
	ErrNameCount        = errors.New("more sample names than non-empty columns")
	ErrConfig           = errors.New("invalid configuration")
)
