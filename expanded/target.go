// SPDX-License-Identifier: MIT
// Package: expanded
//
// target.go — clique injection, synthetic target-hub variant.
//
// Contract:
//   - At most one TargetHub vertex ever exists; it is appended on the first
//     call that finds at least one matching Instance and reused afterwards.
//   - Every Instance whose ingredient id is in the target set gets a spoke
//     of weight 1 to the hub; spokes accumulate on repeated calls.
//   - Existing vertices are never removed or renumbered.

package expanded

import "fmt"

// ConnectTargetHub biases the graph toward the ingredient ids in targets by
// connecting every matching Instance vertex to a single TargetHub.
// It returns the number of instances connected. When no instance matches,
// no hub is created and 0 is returned.
//
// Errors: ErrInvalidIngredientID for an id outside [0, NumIngredients()); the
// relation is left untouched in that case.
//
// Complexity: O(V + |targets|).
func (r *Relation) ConnectTargetHub(targets []int) (int, error) {
	want := make(map[int]struct{}, len(targets))
	for _, id := range targets {
		if id < 0 || id >= r.numIngredients {
			return 0, fmt.Errorf("%s: id %d not in [0,%d): %w",
				methodConnectTargetHub, id, r.numIngredients, ErrInvalidIngredientID)
		}
		want[id] = struct{}{}
	}

	var matches []int
	for v, vx := range r.vertices {
		if vx.Kind != Instance {
			continue
		}
		if _, ok := want[vx.Ingredient]; ok {
			matches = append(matches, v)
		}
	}
	if len(matches) == 0 {
		return 0, nil
	}

	if r.targetHub < 0 {
		r.targetHub = r.push(Vertex{Kind: TargetHub})
	}
	for _, v := range matches {
		r.addEdge(r.targetHub, v, spokeWeight)
	}

	return len(matches), nil
}
