package campus_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/footpath/campus"
	"github.com/katalvlaran/footpath/dijkstra"
	"github.com/katalvlaran/footpath/geo"
)

func loadTestMap(t *testing.T) *campus.Map {
	t.Helper()
	m, err := campus.Load("testdata/map.yaml")
	require.NoError(t, err)

	return m
}

func TestLoad_Counts(t *testing.T) {
	m := loadTestMap(t)
	assert.Equal(t, campus.Stats{Nodes: 7, Footways: 3, Buildings: 4}, m.Stats())

	n, ok := m.Node(4)
	require.True(t, ok)
	assert.Equal(t, geo.Coordinates{Lat: 41.8710, Lon: -87.6490}, n.Coordinates)
	_, ok = m.Node(42)
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		file string
		want error
	}{
		{"testdata/unknown_node.yaml", campus.ErrUnknownNode},
		{"testdata/duplicate_node.yaml", campus.ErrDuplicateNode},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			_, err := campus.Load(tc.file)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := campus.Load("testdata/bad_field.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")

	_, err = campus.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	_, err := campus.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, campus.ErrEmptyMap)

	_, err = campus.Decode(strings.NewReader("nodes: []\n"))
	assert.ErrorIs(t, err, campus.ErrEmptyMap)

	_, err = campus.Decode(strings.NewReader("nodes:\n  - {id: 1, lat: 95, lon: 0}\n"))
	assert.ErrorIs(t, err, campus.ErrInvalidCoordinates)
}

func TestGraph_FootwaysBecomeTwoWayEdges(t *testing.T) {
	m := loadTestMap(t)
	g, err := m.Graph()
	require.NoError(t, err)

	assert.Equal(t, 7, g.NumVertices(), "stray nodes are vertices too")
	// 2 + 1 + 1 segments, both directions.
	assert.Equal(t, 8, g.NumEdges())
	assert.True(t, g.NonNegative())

	n1, _ := m.Node(1)
	n2, _ := m.Node(2)
	want := geo.DistanceMiles(n1.Coordinates, n2.Coordinates)
	for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
		w, err := g.Weight(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, want, w)
	}
	assert.Empty(t, g.Neighbors(7))
}

func TestFindBuilding(t *testing.T) {
	m := loadTestMap(t)

	b, ok := m.FindBuilding("Engineering")
	require.True(t, ok)
	assert.Equal(t, "SEL", b.Abbrev, "first match in document order wins")

	b, ok = m.FindBuilding("ERF")
	require.True(t, ok)
	assert.Equal(t, "Engineering Research Facility", b.Name)

	_, ok = m.FindBuilding("hall")
	assert.False(t, ok, "matching is case sensitive")
	_, ok = m.FindBuilding("")
	assert.False(t, ok)
	_, ok = m.FindBuilding("SE")
	assert.False(t, ok, "abbreviations match exactly, names by substring")
}

func TestNearestFootwayNode(t *testing.T) {
	m := loadTestMap(t)

	cases := map[string]int64{"SEL": 1, "UH": 4, "SCE": 6, "ERF": 3}
	for abbrev, want := range cases {
		b, ok := m.FindBuilding(abbrev)
		require.True(t, ok, abbrev)
		n, ok := m.NearestFootwayNode(b.Coordinates)
		require.True(t, ok)
		assert.Equal(t, want, n.ID, abbrev)
	}

	// Node 7 is nearest to this point but lies on no footway.
	n, ok := m.NearestFootwayNode(geo.Coordinates{Lat: 41.8690, Lon: -87.6520})
	require.True(t, ok)
	assert.NotEqual(t, int64(7), n.ID)
}

func TestNearestFootwayNode_TieAndNoFootways(t *testing.T) {
	doc := `
nodes:
  - {id: 11, lat: 41.87, lon: -87.65}
  - {id: 10, lat: 41.87, lon: -87.65}
footways:
  - {id: 1, nodes: [11, 10]}
`
	m, err := campus.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	n, ok := m.NearestFootwayNode(geo.Coordinates{Lat: 41.9, Lon: -87.6})
	require.True(t, ok)
	assert.Equal(t, int64(10), n.ID, "ties resolve to the smallest id")

	bare, err := campus.Decode(strings.NewReader("nodes:\n  - {id: 1, lat: 1, lon: 1}\n"))
	require.NoError(t, err)
	_, ok = bare.NearestFootwayNode(geo.Coordinates{})
	assert.False(t, ok)
}

func TestMapLiteral_ValidatedOnFirstUse(t *testing.T) {
	a := geo.Coordinates{Lat: 41.8700, Lon: -87.6500}
	b := geo.Coordinates{Lat: 41.8710, Lon: -87.6490}
	m := &campus.Map{
		Nodes:    []campus.Node{{ID: 1, Coordinates: a}, {ID: 2, Coordinates: b}},
		Footways: []campus.Footway{{ID: 1, Nodes: []int64{1, 2}}},
	}

	g, err := m.Graph()
	require.NoError(t, err)
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)
	assert.Equal(t, geo.DistanceMiles(a, b), w)

	n, ok := m.Node(2)
	require.True(t, ok)
	assert.Equal(t, b, n.Coordinates)
	n, ok = m.NearestFootwayNode(b)
	require.True(t, ok)
	assert.Equal(t, int64(2), n.ID)

	dangling := &campus.Map{
		Nodes:    []campus.Node{{ID: 1, Coordinates: a}},
		Footways: []campus.Footway{{ID: 9, Nodes: []int64{1, 3}}},
	}
	_, err = dangling.Graph()
	assert.ErrorIs(t, err, campus.ErrUnknownNode)
	_, ok = dangling.Node(1)
	assert.False(t, ok, "an invalid map exposes no nodes")

	empty := &campus.Map{}
	_, err = empty.Graph()
	assert.ErrorIs(t, err, campus.ErrEmptyMap)
	assert.NotPanics(t, func() {
		_, ok = empty.NearestFootwayNode(a)
	})
	assert.False(t, ok)
	_, err = campus.NewNavigator(empty, nil)
	assert.ErrorIs(t, err, campus.ErrEmptyMap)
}

func TestNavigator_Navigate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	nav, err := campus.NewNavigator(loadTestMap(t), logger)
	require.NoError(t, err)
	assert.Equal(t, campus.Stats{Nodes: 7, Footways: 3, Buildings: 4, Vertices: 7, Edges: 8}, nav.Stats())

	route, err := nav.Navigate("Laboratories", "UH")
	require.NoError(t, err)
	assert.Equal(t, "SEL", route.Start.Abbrev)
	assert.Equal(t, "UH", route.Dest.Abbrev)
	assert.Equal(t, int64(1), route.StartNode.ID)
	assert.Equal(t, int64(4), route.DestNode.ID)
	assert.Equal(t, []int64{1, 2, 3, 4}, route.Path)

	g := nav.Graph()
	want := 0.0
	for i := 1; i < len(route.Path); i++ {
		w, err := g.Weight(route.Path[i-1], route.Path[i])
		require.NoError(t, err)
		want += w
	}
	assert.InDelta(t, want, route.Miles, 1e-12)
	assert.InDelta(t, 0.1207, route.Miles, 1e-3)

	assert.Contains(t, logs.String(), "campus: route")
}

func TestNavigator_Errors(t *testing.T) {
	nav, err := campus.NewNavigator(loadTestMap(t), nil)
	require.NoError(t, err)

	_, err = nav.Navigate("Nowhere", "UH")
	assert.ErrorIs(t, err, campus.ErrStartNotFound)

	_, err = nav.Navigate("UH", "Nowhere")
	assert.ErrorIs(t, err, campus.ErrDestinationNotFound)

	route, err := nav.Navigate("SCE", "SEL")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	require.NotNil(t, route)
	assert.Equal(t, int64(6), route.StartNode.ID)
	assert.Equal(t, int64(1), route.DestNode.ID)
	assert.True(t, math.IsInf(route.Miles, 1))
	assert.Nil(t, route.Path)
}

func TestNavigator_SameNode(t *testing.T) {
	nav, err := campus.NewNavigator(loadTestMap(t), nil)
	require.NoError(t, err)

	miles, path, err := nav.Route(3, 3)
	require.NoError(t, err)
	assert.Zero(t, miles)
	assert.Equal(t, []int64{3}, path)
}
