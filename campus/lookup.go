// SPDX-License-Identifier: MIT

package campus

import (
	"strings"

	"github.com/katalvlaran/footpath/geo"
)

// FindBuilding returns the first building, in document order, whose full
// name contains query or whose abbreviation equals it. Matching is case
// sensitive. An empty query matches nothing.
func (m *Map) FindBuilding(query string) (Building, bool) {
	if query == "" {
		return Building{}, false
	}
	for _, b := range m.Buildings {
		if strings.Contains(b.Name, query) || b.Abbrev == query {
			return b, true
		}
	}

	return Building{}, false
}

// NearestFootwayNode returns the footway node closest to c. Equal distances
// resolve to the smallest node id. Nodes on no footway are never returned.
//
// An invalid map has no nearest node.
//
// Complexity: O(total footway length).
func (m *Map) NearestFootwayNode(c geo.Coordinates) (Node, bool) {
	if m.ensureIndex() != nil {
		return Node{}, false
	}

	var (
		best  Node
		bestD float64
		found bool
	)
	for _, fw := range m.Footways {
		for _, id := range fw.Nodes {
			n := m.Nodes[m.index[id]]
			d := geo.DistanceMiles(c, n.Coordinates)
			if !found || d < bestD || (d == bestD && n.ID < best.ID) {
				best, bestD, found = n, d, true
			}
		}
	}

	return best, found
}
