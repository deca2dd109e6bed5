package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kikimo/toadjacency/pkg/adjacency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeedsBuilder(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), &out, GenerateOpts{vertexes: 2, edgeType: "e", batch: 3})
	require.NoError(t, err)
	assert.Equal(t, "1,1,e\n1,2,e\n2,1,e\n2,2,e\n", out.String())

	m, err := adjacency.Build(strings.NewReader(out.String()))
	require.NoError(t, err)

	var adj bytes.Buffer
	require.NoError(t, m.Print(&adj, adjacency.InsertionOrder))
	assert.Equal(t, "1 1 2\n2 1 2\n", adj.String())
}

func TestGenerateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--vertexes", "3", "--type", "likes", "--batch", "2"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "1,1,likes", lines[0])
	assert.Equal(t, "3,3,likes", lines[8])
}

func TestGenerateRejectsArgs(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--type", "e", "edges.csv"})
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.ExecuteContext(context.Background()))
}

func TestGenerateRateLimited(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), &out, GenerateOpts{vertexes: 3, edgeType: "e", batch: 4, rate: 1000})
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out.String(), "\n"))
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runGenerate(ctx, &out, GenerateOpts{vertexes: 4, edgeType: "e", batch: 2, rate: 1})
	assert.Error(t, err)
}

func TestGenerateRejectsBadBatch(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), &out, GenerateOpts{vertexes: 2, edgeType: "e", batch: 0})
	assert.Error(t, err)
}

func TestGenerateRejectsTypeWithSeparator(t *testing.T) {
	for _, typ := range []string{"a,b", ",", "x\ny"} {
		var out bytes.Buffer
		err := runGenerate(context.Background(), &out, GenerateOpts{vertexes: 2, edgeType: typ, batch: 4})
		assert.Error(t, err, "type %q", typ)
		assert.Empty(t, out.String())
	}
}
