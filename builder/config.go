// SPDX-License-Identifier: MIT
// Package: footpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn      = identity            (index i → vertex id i)
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant 1)
//   • oneWay    = false               (every link becomes two opposite arcs)

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/footpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn     IDFn       // index → vertex id (deterministic)
	rng      *rand.Rand // nil means “no randomness”
	weightFn WeightFn   // per-link weight generator
	oneWay   bool       // emit only the forward arc of each link
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ensureVertex adds id unless it is already present.
func ensureVertex(g *Graph, method string, id int64) error {
	err := g.AddVertex(id)
	if err == nil || errors.Is(err, core.ErrVertexExists) {
		return nil
	}

	return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
}

// link emits u→v and, unless cfg.oneWay, v→u with the same weight drawn once.
func link(g *Graph, cfg builderConfig, method string, u, v int64) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if cfg.oneWay || u == v {
		return nil
	}
	if err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
	}

	return nil
}
