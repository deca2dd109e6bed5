package adjacency

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// adjacency lines are split on every single tab or space, the way the
// Giraph PageRank vertex reader tokenizes them
var separator = regexp.MustCompile(`[\t ]`)

func splitAdjacencyLine(line string) []string {
	tokens := separator.Split(line, -1)
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}

// ReadAdjacency parses lines written by Print back into a Map. Nodes are
// registered in line order; targets are not registered as nodes of their
// own, they only come from their own lines. A repeated node line appends to
// the earlier one.
func ReadAdjacency(r io.Reader) (*Map, error) {
	m := NewMap()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		tokens := splitAdjacencyLine(line)
		for _, tok := range tokens {
			if tok == "" {
				return nil, &FormatError{
					Line:   lineno,
					Text:   line,
					Fields: len(tokens),
					Reason: "empty token",
				}
			}
		}

		node := tokens[0]
		m.ensure(node)
		m.targets[node] = append(m.targets[node], tokens[1:]...)
		m.edges += len(tokens) - 1
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineno+1, err)
	}

	return m, nil
}

// CheckIntIDs reports the first node or target, in insertion order, that
// is not a 32-bit decimal integer.
func (m *Map) CheckIntIDs() error {
	check := func(id string) error {
		if _, err := strconv.ParseInt(id, 10, 32); err != nil {
			return fmt.Errorf("node id %q is not a 32-bit integer: %w", id, err)
		}
		return nil
	}

	for _, node := range m.nodes {
		if err := check(node); err != nil {
			return err
		}
		for _, t := range m.targets[node] {
			if err := check(t); err != nil {
				return err
			}
		}
	}

	return nil
}
