package adjacency

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/golang/glog"
)

const maxLineSize = 16 * 1024 * 1024

type Order int

const (
	InsertionOrder Order = iota
	SortedOrder
)

func (o Order) String() string {
	switch o {
	case InsertionOrder:
		return "insertion"
	case SortedOrder:
		return "sorted"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "insertion":
		return InsertionOrder, nil
	case "sorted":
		return SortedOrder, nil
	default:
		return InsertionOrder, fmt.Errorf("unknown order: %q", s)
	}
}

// Map holds the outgoing targets of every node seen as a source or a
// target, remembering the order in which nodes were first seen.
type Map struct {
	targets map[string][]string
	nodes   []string
	edges   int
}

func NewMap() *Map {
	return &Map{
		targets: map[string][]string{},
	}
}

func (m *Map) ensure(node string) {
	if _, ok := m.targets[node]; ok {
		return
	}

	m.targets[node] = []string{}
	m.nodes = append(m.nodes, node)
}

// Add registers both endpoints and records the edge on its source only.
// Parallel edges and self-loops are kept as they come.
func (m *Map) Add(e Edge) {
	m.ensure(e.Source)
	m.ensure(e.Target)
	m.targets[e.Source] = append(m.targets[e.Source], e.Target)
	m.edges++
}

func (m *Map) Targets(node string) ([]string, bool) {
	t, ok := m.targets[node]
	return t, ok
}

// Len returns the number of distinct nodes.
func (m *Map) Len() int {
	return len(m.nodes)
}

// Edges returns the number of edges added.
func (m *Map) Edges() int {
	return m.edges
}

func (m *Map) Nodes(order Order) []string {
	nodes := make([]string, len(m.nodes))
	copy(nodes, m.nodes)
	if order == SortedOrder {
		sort.Strings(nodes)
	}

	return nodes
}

// Build reads one edge per line from r. It stops at the first malformed
// line.
func Build(r io.Reader) (*Map, error) {
	m := NewMap()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		e, err := ParseEdge(line)
		if err != nil {
			if ferr, ok := err.(*FormatError); ok {
				ferr.Line = lineno
			}
			return nil, err
		}

		if glog.V(2) {
			glog.Infof("line %d: edge %s", lineno, e)
		}
		m.Add(e)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineno+1, err)
	}

	glog.V(1).Infof("read %d edges, %d nodes", m.Edges(), m.Len())
	return m, nil
}

// BuildFile opens path and builds its adjacency map. Failures to open or
// read the file are reported as *FileAccessError.
func BuildFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			glog.Errorf("error closing %s: %+v", path, err)
		}
	}()

	m, err := Build(f)
	if err != nil {
		if _, ok := err.(*FormatError); ok {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return nil, &FileAccessError{Path: path, Err: err}
	}

	return m, nil
}

// Print writes one line per node: the node followed by each of its targets,
// separated by single spaces.
func (m *Map) Print(w io.Writer, order Order) error {
	bw := bufio.NewWriter(w)
	for _, node := range m.Nodes(order) {
		if _, err := bw.WriteString(node); err != nil {
			return err
		}

		for _, t := range m.targets[node] {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			if _, err := bw.WriteString(t); err != nil {
				return err
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
