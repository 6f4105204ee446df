// SPDX-License-Identifier: MIT

package campus

import (
	"fmt"

	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/geo"
)

// Graph builds the walking graph: one vertex per node (footway or not), and
// for each consecutive footway pair (a,b) the edges a→b and b→a weighted by
// their distance in miles. The graph rejects negative weights.
//
// A Map assembled by hand is validated first and its validation error, such
// as ErrEmptyMap or ErrUnknownNode, is returned as is.
//
// Complexity: O((N + F) log N) for N nodes and F footway segments.
func (m *Map) Graph() (*core.Graph[int64, float64], error) {
	if err := m.ensureIndex(); err != nil {
		return nil, err
	}

	g := core.NewGraph[int64, float64](core.WithNonNegativeWeights())
	for _, n := range m.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("campus: graph: %w", err)
		}
	}

	for _, fw := range m.Footways {
		for j := 0; j+1 < len(fw.Nodes); j++ {
			a, b := fw.Nodes[j], fw.Nodes[j+1]
			w := geo.DistanceMiles(m.coordsOf(a), m.coordsOf(b))
			if err := g.AddEdge(a, b, w); err != nil {
				return nil, fmt.Errorf("campus: footway %d: %w", fw.ID, err)
			}
			if err := g.AddEdge(b, a, w); err != nil {
				return nil, fmt.Errorf("campus: footway %d: %w", fw.ID, err)
			}
		}
	}

	return g, nil
}

func (m *Map) coordsOf(id int64) geo.Coordinates {
	return m.Nodes[m.index[id]].Coordinates
}
