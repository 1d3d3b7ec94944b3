// SPDX-License-Identifier: MIT
// Package: expanded
//
// components.go — connected components by breadth-first search.
//
// Contract:
//   - Components are numbered in order of their smallest vertex, so vertex 0
//     (when present) is always in component 0.
//   - Edge weights are ignored; any stored edge connects its endpoints.

package expanded

// Components labels every vertex with its connected component and returns
// the labels together with the number of components. Recipes that share no
// ingredient chain, and ingredient hubs of unused ingredients, end up in
// separate components.
//
// Complexity: O(V + E).
func (r *Relation) Components() (labels []int, count int) {
	adj := r.AdjacencyMatrix()
	n := adj.Rows()
	labels = make([]int, n)
	for v := range labels {
		labels[v] = -1
	}

	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if labels[root] >= 0 {
			continue
		}
		labels[root] = count
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			// v < n, so Row cannot fail
			nbrs, _, _ := adj.Row(v)
			for _, u := range nbrs {
				if labels[u] < 0 {
					labels[u] = count
					queue = append(queue, u)
				}
			}
		}
		count++
	}

	return labels, count
}
