package adjacency

import (
	"fmt"
	"strings"
)

const edgeFields = 3

// Edge is one line of the input edge list. Type is parsed but not used when
// building adjacency.
type Edge struct {
	Source string
	Target string
	Type   string
}

func (e Edge) String() string {
	return fmt.Sprintf("%s->%s(%s)", e.Source, e.Target, e.Type)
}

// ParseEdge splits a trimmed line on commas. Fields are not trimmed
// individually.
func ParseEdge(line string) (Edge, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != edgeFields {
		return Edge{}, &FormatError{
			Text:   line,
			Fields: len(fields),
		}
	}

	return Edge{
		Source: fields[0],
		Target: fields[1],
		Type:   fields[2],
	}, nil
}
