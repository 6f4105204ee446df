// SPDX-License-Identifier: MIT
// Package campus turns a walking map (nodes, footways and buildings) into a
// core.Graph and answers building-to-building navigation queries on it.
//
// A map document lists:
//
//	nodes:     known positions, each with a unique integer id
//	footways:  walking paths, each an ordered list of node ids
//	buildings: named landmarks with an abbreviation and a position
//
// Every pair of consecutive footway nodes becomes two opposite edges weighted
// by their great-circle distance in miles (geo.DistanceMiles).
//
// Errors:
//
//	ErrEmptyMap             - the document has no nodes.
//	ErrDuplicateNode        - two nodes share an id.
//	ErrUnknownNode          - a footway references an id not listed in nodes.
//	ErrInvalidCoordinates   - a latitude/longitude is out of range.
//	ErrStartNotFound        - no building matches the start query.
//	ErrDestinationNotFound  - no building matches the destination query.
//	ErrNoFootways           - there is no footway node to snap a building to.
package campus

import (
	"errors"

	"github.com/katalvlaran/footpath/geo"
)

// Sentinel errors for map loading and navigation.
var (
	ErrEmptyMap            = errors.New("campus: map has no nodes")
	ErrDuplicateNode       = errors.New("campus: duplicate node id")
	ErrUnknownNode         = errors.New("campus: footway references unknown node")
	ErrInvalidCoordinates  = errors.New("campus: coordinates out of range")
	ErrStartNotFound       = errors.New("campus: start building not found")
	ErrDestinationNotFound = errors.New("campus: destination building not found")
	ErrNoFootways          = errors.New("campus: map has no footway nodes")
)

// Node is a known position on the map.
type Node struct {
	ID              int64 `yaml:"id"`
	geo.Coordinates `yaml:",inline"`
}

// Footway is a walking path through an ordered list of node ids.
type Footway struct {
	ID    int64   `yaml:"id"`
	Nodes []int64 `yaml:"nodes"`
}

// Building is a named landmark.
type Building struct {
	Name            string `yaml:"name"`
	Abbrev          string `yaml:"abbrev"`
	geo.Coordinates `yaml:",inline"`
}

// Map is a walking map. Load and Decode validate it up front; a Map built as
// a literal is validated on first use. Validation mutates the Map, so a
// literal must not be shared between goroutines before its first use.
type Map struct {
	Nodes     []Node     `yaml:"nodes"`
	Footways  []Footway  `yaml:"footways"`
	Buildings []Building `yaml:"buildings"`

	index map[int64]int // node id -> position in Nodes
}

// Stats summarizes a map and, for a Navigator, the graph built from it.
type Stats struct {
	Nodes     int
	Footways  int
	Buildings int
	Vertices  int
	Edges     int
}

// Node returns the node with the given id. An invalid map has no nodes.
func (m *Map) Node(id int64) (Node, bool) {
	if m.ensureIndex() != nil {
		return Node{}, false
	}
	i, ok := m.index[id]
	if !ok {
		return Node{}, false
	}

	return m.Nodes[i], true
}

// Stats reports node, footway and building counts. Graph counts stay zero;
// see Navigator.Stats.
func (m *Map) Stats() Stats {
	return Stats{
		Nodes:     len(m.Nodes),
		Footways:  len(m.Footways),
		Buildings: len(m.Buildings),
	}
}
