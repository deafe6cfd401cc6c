package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/hamroute/core"
	"github.com/katalvlaran/hamroute/matrix"
)

// ErrIsolatedLocation indicates a location without edges, which the line
// format cannot express.
var ErrIsolatedLocation = errors.New("parser: location has no edges")

// ErrUnwritableName indicates a location name that Parse could not read back:
// empty or containing whitespace.
var ErrUnwritableName = errors.New("parser: name cannot be written")

// FormatLine renders t as "FROM to TO = DISTANCE".
func FormatLine(t matrix.Triplet) (string, error) {
	for _, name := range []string{t.From, t.To} {
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return "", fmt.Errorf("%q: %w", name, ErrUnwritableName)
		}
	}
	if t.Distance < 0 {
		return "", fmt.Errorf("%s to %s: %w", t.From, t.To, ErrBadDistance)
	}

	return fmt.Sprintf("%s %s %s %s %d", t.From, tokTo, t.To, tokEquals, t.Distance), nil
}

// Write emits one line per triplet, in order.
func Write(w io.Writer, ts []matrix.Triplet) error {
	bw := bufio.NewWriter(w)
	for _, t := range ts {
		line, err := FormatLine(t)
		if err != nil {
			return err
		}
		if _, err = bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("parser: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("parser: write: %w", err)
	}

	return nil
}

// WriteGraph writes every edge of g in insertion order. A location without
// edges has no line form, so WriteGraph refuses the whole graph with
// ErrIsolatedLocation before writing anything. Reading the output back with
// ParseGraph yields the same locations in the same order.
func WriteGraph(w io.Writer, g *core.Graph) error {
	var isolated []string
	for _, id := range g.Vertices() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("parser: %s: %w", id, err)
		}
		if len(nbrs) == 0 {
			isolated = append(isolated, id)
		}
	}
	if len(isolated) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(isolated, ", "), ErrIsolatedLocation)
	}

	edges := g.Edges()
	ts := make([]matrix.Triplet, len(edges))
	for i, e := range edges {
		ts[i] = matrix.Triplet{From: e.From, To: e.To, Distance: e.Weight}
	}

	return Write(w, ts)
}
