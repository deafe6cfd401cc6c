// Package parser reads route lists of the form
//
//	London to Dublin = 464
//
// one undirected distance per line, into matrix triplets or a core.Graph.
// Blank lines are skipped and surrounding whitespace is ignored; names may
// not contain whitespace.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamroute/core"
	"github.com/katalvlaran/hamroute/matrix"
)

var (
	// ErrMalformedLine indicates a line that is not "NAME to NAME = DISTANCE".
	ErrMalformedLine = errors.New("parser: malformed line")

	// ErrBadDistance indicates a distance that is not a non-negative integer.
	ErrBadDistance = errors.New("parser: bad distance")
)

// Line grammar tokens.
const (
	tokTo     = "to"
	tokEquals = "="
	numFields = 5 // NAME to NAME = DISTANCE
)

// LineError reports the 1-based line that failed and why.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseLine parses one non-empty line.
func ParseLine(line string) (matrix.Triplet, error) {
	fields := strings.Fields(line)
	if len(fields) != numFields || fields[1] != tokTo || fields[3] != tokEquals {
		return matrix.Triplet{}, ErrMalformedLine
	}
	dist, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil || dist < 0 {
		return matrix.Triplet{}, ErrBadDistance
	}

	return matrix.Triplet{From: fields[0], To: fields[2], Distance: dist}, nil
}

// Parse reads every line of r. The first bad line stops parsing with a
// *LineError.
func Parse(r io.Reader) ([]matrix.Triplet, error) {
	var out []matrix.Triplet
	err := scan(r, func(t matrix.Triplet) error {
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scan calls fn for every non-blank line of r. Errors from ParseLine or fn
// become a *LineError for that line.
func scan(r io.Reader, fn func(t matrix.Triplet) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		t, err := ParseLine(text)
		if err == nil {
			err = fn(t)
		}
		if err != nil {
			return &LineError{Line: n, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("parser: read: %w", err)
	}

	return nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]matrix.Triplet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseGraph parses r into a route network created with gopts. By default a
// repeated pair overwrites the earlier distance, matching matrix.Builder;
// with core.WithStrictEdges it fails with a *LineError wrapping
// core.ErrDuplicateEdge. Self-loops fail the same way with
// core.ErrLoopNotAllowed.
func ParseGraph(r io.Reader, gopts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	err := scan(r, func(t matrix.Triplet) error {
		_, err := g.AddEdge(t.From, t.To, t.Distance)
		return err
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// ParseGraphFile opens path and parses it with ParseGraph.
func ParseGraphFile(path string, gopts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	defer f.Close()

	return ParseGraph(f, gopts...)
}
