package graph

// Components runs a DFS over vertices 0..n-1 using only the given edges and
// returns the number of connected components plus a component id (1-based)
// for every vertex.
func Components(n int, edges []Edge) (int, []int) {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	comp := make([]int, n)
	var dfs func(v, id int)
	dfs = func(v, id int) {
		comp[v] = id
		for _, w := range adj[v] {
			if comp[w] == 0 {
				dfs(w, id)
			}
		}
	}

	count := 0
	for v := 0; v < n; v++ {
		if comp[v] == 0 {
			count++
			dfs(v, count)
		}
	}
	return count, comp
}

// Connected reports whether all of vs lie in one component of the graph on
// vertices 0..n-1 restricted to the given edges.
func Connected(n int, edges []Edge, vs []int) bool {
	if len(vs) == 0 {
		return true
	}
	_, comp := Components(n, edges)
	first := comp[vs[0]]
	for _, v := range vs[1:] {
		if comp[v] != first {
			return false
		}
	}
	return true
}
