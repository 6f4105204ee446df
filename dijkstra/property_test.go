package dijkstra_test

import (
	"errors"
	"testing"

	oracle "github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/footpath/builder"
	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/dijkstra"
)

const (
	propVertices = 40
	propDensity  = 0.12
	propMaxW     = 25
)

var propSeeds = []int64{1, 7, 42, 2024, 31337}

// sparse builds a directed G(n,p) with integral weights so float sums are exact.
func sparse(t testing.TB, seed int64) *core.Graph[int64, float64] {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithOneWay(),
		builder.WithWeightFn(builder.IntegerWeightFn(0, propMaxW)),
	}, builder.RandomSparse(propVertices, propDensity))
	require.NoError(t, err)

	return g
}

func TestProperty_SettleOrderNonDecreasingAndUnique(t *testing.T) {
	for _, seed := range propSeeds {
		g := sparse(t, seed)
		res, err := dijkstra.ShortestPaths(g, int64(0))
		require.NoError(t, err)

		order := res.Order()
		seen := make(map[int64]bool, len(order))
		for i, v := range order {
			require.False(t, seen[v], "seed %d: %d settled twice", seed, v)
			seen[v] = true
			require.True(t, res.Reachable(v))
			if i > 0 {
				assert.LessOrEqual(t, res.Cost(order[i-1]), res.Cost(v), "seed %d", seed)
			}
		}
		assert.Len(t, order, len(res.Distances()), "exactly the reached vertices are settled")
	}
}

func TestProperty_NoEdgeCanBeRelaxed(t *testing.T) {
	for _, seed := range propSeeds {
		g := sparse(t, seed)
		res, err := dijkstra.ShortestPaths(g, int64(0))
		require.NoError(t, err)

		for _, u := range g.Vertices() {
			du, ok := res.Distance(u)
			if !ok {
				continue
			}
			for v, w := range g.OutEdges(u) {
				dv, ok := res.Distance(v)
				require.True(t, ok, "seed %d: %d reachable via %d", seed, v, u)
				assert.LessOrEqual(t, dv, du+w, "seed %d: edge %d→%d", seed, u, v)
			}
		}
	}
}

func TestProperty_PredecessorChainSumsToDistance(t *testing.T) {
	for _, seed := range propSeeds {
		g := sparse(t, seed)
		res, err := dijkstra.ShortestPaths(g, int64(0))
		require.NoError(t, err)

		for v, want := range res.Distances() {
			path, err := res.PathTo(v)
			require.NoError(t, err)
			require.Equal(t, int64(0), path[0])
			require.Equal(t, v, path[len(path)-1])

			sum := 0.0
			for i := 1; i < len(path); i++ {
				w, err := g.Weight(path[i-1], path[i])
				require.NoError(t, err, "seed %d: path uses a missing edge", seed)
				sum += w
			}
			assert.Equal(t, want, sum, "seed %d: target %d", seed, v)
		}
	}
}

// TestDifferential_AgainstReferenceImplementation cross-checks distances with
// an independent Dijkstra over the same arcs.
func TestDifferential_AgainstReferenceImplementation(t *testing.T) {
	for _, seed := range propSeeds {
		g := sparse(t, seed)

		ref := oracle.NewGraph()
		for i := 0; i < propVertices; i++ {
			ref.AddVertex(i)
		}
		for _, u := range g.Vertices() {
			for v, w := range g.OutEdges(u) {
				require.NoError(t, ref.AddArc(int(u), int(v), int64(w)))
			}
		}

		res, err := dijkstra.ShortestPaths(g, int64(0))
		require.NoError(t, err)

		for target := 1; target < propVertices; target++ {
			best, refErr := ref.Shortest(0, target)
			if refErr != nil {
				assert.False(t, res.Reachable(int64(target)), "seed %d: %d", seed, target)
				continue
			}
			require.True(t, res.Reachable(int64(target)), "seed %d: %d", seed, target)
			assert.Equal(t, float64(best.Distance), res.Cost(int64(target)), "seed %d: %d", seed, target)
		}
	}
}

func TestReconstruct_PredecessorMap(t *testing.T) {
	prev := dijkstra.PredecessorMap[string]{"b": "a", "c": "b", "d": "c"}

	path, err := dijkstra.Reconstruct[string](prev, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)

	path, err = dijkstra.Reconstruct[string](prev, "a", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)

	_, err = dijkstra.Reconstruct[string](prev, "a", "z")
	assert.True(t, errors.Is(err, dijkstra.ErrUnreachable))

	_, err = dijkstra.Reconstruct[string](prev, "x", "d")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable, "chain ends at a before reaching x")
}

func TestReconstruct_CycleDetected(t *testing.T) {
	prev := dijkstra.PredecessorMap[int]{1: 2, 2: 3, 3: 1}
	_, err := dijkstra.Reconstruct[int](prev, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestGrid_ManhattanDistances(t *testing.T) {
	const rows, cols = 4, 5
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, int64(0))
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, float64(r+c), res.Cost(int64(r*cols+c)))
		}
	}
}
