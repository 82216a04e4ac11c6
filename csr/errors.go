package csr

import "errors"

// ErrInputNotFound indicates the edge-list path could not be opened or read.
var ErrInputNotFound = errors.New("csr: input file not found")

// ErrMalformedLine indicates a non-header, non-comment line could not be
// parsed as two (optionally three) whitespace- or comma-separated numbers.
var ErrMalformedLine = errors.New("csr: malformed edge-list line")
