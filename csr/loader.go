package csr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AAA-1010/dynamic-sssp-update/edgeset"
)

// LoadOptions configures edge-list parsing. Use LoadEdgeList's functional
// options to set non-default behavior.
type LoadOptions struct {
	// OneBased decrements both endpoints on read, for files whose vertex
	// ids start at 1 rather than 0.
	OneBased bool
}

// LoadOption is a functional option for LoadEdgeList.
type LoadOption func(*LoadOptions)

// WithOneBased toggles one-based vertex ids in the input file.
func WithOneBased(oneBased bool) LoadOption {
	return func(o *LoadOptions) { o.OneBased = oneBased }
}

// LoadEdgeList reads an undirected edge-list file into a fresh EdgeSet.
//
// Format: one edge per line, fields separated by comma or whitespace
// (interchangeably). Empty lines and lines beginning with '#' are skipped.
// An unparseable first non-comment, non-empty line is treated as an
// optional header and skipped once; any later unparseable line is a hard
// error (ErrMalformedLine). Each line carries two integer vertex ids and an
// optional weight (defaults to 1).
//
// Returns ErrInputNotFound if path cannot be opened or read.
func LoadEdgeList(path string, opts ...LoadOption) (*edgeset.EdgeSet, error) {
	cfg := LoadOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer f.Close()

	return parseEdgeList(f, cfg)
}

func parseEdgeList(r io.Reader, cfg LoadOptions) (*edgeset.EdgeSet, error) {
	es := edgeset.New()
	scanner := bufio.NewScanner(r)
	headerSkipped := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		u, v, w, ok := parseLine(line)
		if !ok {
			if !headerSkipped {
				headerSkipped = true
				continue
			}

			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		headerSkipped = true

		if cfg.OneBased {
			u--
			v--
		}

		if err := es.Add(u, v, w); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}

	return es, nil
}

// parseLine splits a line on commas or whitespace and parses two required
// integer fields plus an optional float weight (default 1). ok is false if
// fewer than two fields are present or the first two do not parse as
// integers.
func parseLine(line string) (u, v int, w float64, ok bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) < 2 {
		return 0, 0, 0, false
	}

	uu, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, false
	}
	vv, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, false
	}

	w = 1
	if len(fields) >= 3 {
		if ww, err := strconv.ParseFloat(fields[2], 64); err == nil {
			w = ww
		}
	}

	return uu, vv, w, true
}
