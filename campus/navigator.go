// SPDX-License-Identifier: MIT

package campus

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/dijkstra"
)

// Route is the answer to one navigation query. When the destination node is
// unreachable, Navigate returns the partially filled Route together with an
// error wrapping dijkstra.ErrUnreachable, so callers can still report the
// resolved buildings and nodes.
type Route struct {
	Start     Building
	Dest      Building
	StartNode Node
	DestNode  Node
	Miles     float64 // total distance; +Inf when unreachable
	Path      []int64 // node ids from StartNode to DestNode
}

// Navigator answers building-to-building queries on one map. The graph is
// built once by NewNavigator and only read afterwards, so a Navigator is safe
// for concurrent use.
type Navigator struct {
	m      *Map
	g      *core.Graph[int64, float64]
	logger *slog.Logger
}

// NewNavigator builds the walking graph of m. logger may be nil.
func NewNavigator(m *Map, logger *slog.Logger) (*Navigator, error) {
	g, err := m.Graph()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("campus: graph built", "vertices", g.NumVertices(), "edges", g.NumEdges())

	return &Navigator{m: m, g: g, logger: logger}, nil
}

// Map returns the underlying map.
func (n *Navigator) Map() *Map { return n.m }

// Graph returns the walking graph. Callers must not mutate it.
func (n *Navigator) Graph() *core.Graph[int64, float64] { return n.g }

// Stats reports map counts plus vertex and edge counts of the graph.
func (n *Navigator) Stats() Stats {
	s := n.m.Stats()
	s.Vertices = n.g.NumVertices()
	s.Edges = n.g.NumEdges()

	return s
}

// FindBuilding delegates to Map.FindBuilding.
func (n *Navigator) FindBuilding(query string) (Building, bool) {
	return n.m.FindBuilding(query)
}

// NearestNode delegates to Map.NearestFootwayNode.
func (n *Navigator) NearestNode(b Building) (Node, bool) {
	return n.m.NearestFootwayNode(b.Coordinates)
}

// Route runs one shortest-path query between two node ids and returns the
// distance in miles and the node path.
//
// Errors:
//   - dijkstra.ErrUnreachable (wrapped) if to cannot be reached from from.
func (n *Navigator) Route(from, to int64) (float64, []int64, error) {
	res, err := dijkstra.ShortestPaths(n.g, from, dijkstra.WithLogger(n.logger))
	if err != nil {
		return 0, nil, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return res.Cost(to), nil, err
	}
	n.logger.Debug("campus: route", "from", from, "to", to, "miles", res.Cost(to), "hops", len(path)-1)

	return res.Cost(to), path, nil
}

// Navigate resolves both queries to buildings, snaps each building to its
// nearest footway node and routes between the two nodes.
func (n *Navigator) Navigate(startQuery, destQuery string) (*Route, error) {
	start, ok := n.m.FindBuilding(startQuery)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startQuery)
	}
	dest, ok := n.m.FindBuilding(destQuery)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDestinationNotFound, destQuery)
	}

	r := &Route{Start: start, Dest: dest}
	if r.StartNode, ok = n.NearestNode(start); !ok {
		return nil, ErrNoFootways
	}
	if r.DestNode, ok = n.NearestNode(dest); !ok {
		return nil, ErrNoFootways
	}

	miles, path, err := n.Route(r.StartNode.ID, r.DestNode.ID)
	r.Miles, r.Path = miles, path
	if err != nil {
		return r, fmt.Errorf("campus: %s -> %s: %w", start.Abbrev, dest.Abbrev, err)
	}

	return r, nil
}
