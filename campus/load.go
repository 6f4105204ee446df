// SPDX-License-Identifier: MIT

package campus

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the map document at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campus: open map: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Decode parses a YAML map document from r and validates it.
// Unknown fields are rejected so typos do not silently drop data.
func Decode(r io.Reader) (*Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMap
		}
		return nil, fmt.Errorf("campus: parse map: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// ensureIndex validates a Map that did not come from Decode, such as a
// struct literal, the first time it is used.
func (m *Map) ensureIndex() error {
	if m.index != nil {
		return nil
	}

	return m.validate()
}

// validate checks referential integrity and builds the node index. The index
// is only kept when the whole map is valid.
func (m *Map) validate() error {
	if len(m.Nodes) == 0 {
		return ErrEmptyMap
	}

	index := make(map[int64]int, len(m.Nodes))
	for i, n := range m.Nodes {
		if _, dup := index[n.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		if !n.Valid() {
			return fmt.Errorf("%w: node %d %v", ErrInvalidCoordinates, n.ID, n.Coordinates)
		}
		index[n.ID] = i
	}

	for _, fw := range m.Footways {
		for _, id := range fw.Nodes {
			if _, ok := index[id]; !ok {
				return fmt.Errorf("%w: footway %d, node %d", ErrUnknownNode, fw.ID, id)
			}
		}
	}

	for _, b := range m.Buildings {
		if !b.Valid() {
			return fmt.Errorf("%w: building %q %v", ErrInvalidCoordinates, b.Name, b.Coordinates)
		}
	}
	m.index = index

	return nil
}
