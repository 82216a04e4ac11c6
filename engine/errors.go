package engine

import (
	"errors"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
)

// ErrInputNotFound indicates the edge-list path backing an engine could not
// be opened. Aliases csr.ErrInputNotFound so callers that only import
// engine can still branch with errors.Is.
var ErrInputNotFound = csr.ErrInputNotFound

// ErrMalformedLine indicates a non-header, non-comment edge-list line could
// not be parsed. Aliases csr.ErrMalformedLine.
var ErrMalformedLine = csr.ErrMalformedLine

// ErrConfigInvalid indicates a driver-level configuration problem, such as
// requesting a source or target vertex that cannot be resolved against the
// current graph.
var ErrConfigInvalid = errors.New("engine: invalid configuration")

// ErrSourceOutOfRange indicates a negative source vertex id, or an
// Initialise source at or beyond the EdgeSet's vertex range
// (MaxVertexID()+1). ApplyChanges grows the engine to cover a larger source
// rather than rejecting it.
var ErrSourceOutOfRange = errors.New("engine: source vertex out of range")
