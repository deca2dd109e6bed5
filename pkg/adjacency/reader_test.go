package adjacency

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAdjacencyRoundTrip(t *testing.T) {
	edges := "1,2,x\n2,3,x\n1,3,y\n4,1,x\n1,2,x\n5,5,z\n"
	built := buildString(t, edges)
	printed := printString(t, built, InsertionOrder)

	read, err := ReadAdjacency(strings.NewReader(printed))
	require.NoError(t, err)

	if diff := cmp.Diff(built.Nodes(InsertionOrder), read.Nodes(InsertionOrder)); diff != "" {
		t.Fatalf("nodes mismatch (-built +read):\n%s", diff)
	}
	for _, node := range built.Nodes(InsertionOrder) {
		want, _ := built.Targets(node)
		got, ok := read.Targets(node)
		require.True(t, ok, "node %s", node)
		assert.Equal(t, want, got, "node %s", node)
	}
	assert.Equal(t, built.Edges(), read.Edges())
	assert.Equal(t, printed, printString(t, read, InsertionOrder))
	assert.NoError(t, read.CheckIntIDs())
}

func TestReadAdjacencyToyGraph(t *testing.T) {
	graph := "2 1\n5 2 4\n3\n4 3 2\n1 4 2 3\n"
	m, err := ReadAdjacency(strings.NewReader(graph))
	require.NoError(t, err)

	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 8, m.Edges())
	got, _ := m.Targets("3")
	assert.Empty(t, got)
	assert.Equal(t, graph, printString(t, m, InsertionOrder))
	assert.Equal(t, "1 4 2 3\n2 1\n3\n4 3 2\n5 2 4\n", printString(t, m, SortedOrder))
}

func TestReadAdjacencySeparators(t *testing.T) {
	m, err := ReadAdjacency(strings.NewReader("1\t2 3\n2 \n"))
	require.NoError(t, err)
	got, _ := m.Targets("1")
	assert.Equal(t, []string{"2", "3"}, got)
	got, _ = m.Targets("2")
	assert.Empty(t, got)

	for _, input := range []string{"1  2\n", " 1 2\n", "\n"} {
		_, err := ReadAdjacency(strings.NewReader(input))
		var ferr *FormatError
		require.True(t, errors.As(err, &ferr), "input %q", input)
		assert.Equal(t, 1, ferr.Line)
		assert.Contains(t, err.Error(), "empty token")
	}
}

func TestCheckIntIDs(t *testing.T) {
	assert.NoError(t, buildString(t, "1,2,x\n-3,2147483647,x\n").CheckIntIDs())

	err := buildString(t, "1,a,x\n").CheckIntIDs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a"`)

	assert.Error(t, buildString(t, "1,2147483648,x\n").CheckIntIDs())
}
