package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podeks/ramangraph/cayley"
	"github.com/podeks/ramangraph/colorgraph"
	"github.com/podeks/ramangraph/group"
)

func TestAnalyzeRejectsUnfinishedGraph(t *testing.T) {
	g := colorgraph.NewGraph(group.IdentityPerm(3))
	_, err := Analyze(g)
	assert.ErrorIs(t, err, ErrGraphIncomplete)
}

func TestAnalyzeS3TwoTranspositions(t *testing.T) {
	gens := []cayley.Element{
		group.Transposition(3, 0, 1),
		group.Transposition(3, 1, 2),
	}
	g, err := cayley.Build(gens, group.IdentityPerm(3))
	require.NoError(t, err)

	report, err := Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, 6, report.VertexCount)
	assert.Equal(t, []int{1, 2, 2, 1}, report.ShellSize)
	assert.Equal(t, 3, report.Diameter)
	assert.Equal(t, 6, report.Girth)
	assert.True(t, report.Bipartite)
}

func TestAnalyzeS4AdjacentTranspositions(t *testing.T) {
	gens := []cayley.Element{
		group.Transposition(4, 0, 1),
		group.Transposition(4, 1, 2),
		group.Transposition(4, 2, 3),
	}
	g, err := cayley.Build(gens, group.IdentityPerm(4))
	require.NoError(t, err)

	report, err := Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, 24, report.VertexCount)
	assert.Equal(t, []int{1, 3, 5, 6, 5, 3, 1}, report.ShellSize)
	assert.Equal(t, 6, report.Diameter)
	assert.Equal(t, 4, report.Girth)
	assert.True(t, report.Bipartite)
}
