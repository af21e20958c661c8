package resolve

// DisjointSet is a union-find structure over dense 0..N-1 line indices,
// with path compression and union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet builds a DisjointSet of size n, each element its own root.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}

	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the canonical root of x, compressing the path along the way.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets containing a and b, attaching the lower-rank root
// under the higher-rank one; on equal rank, b's root goes under a's root.
func (ds *DisjointSet) Union(a, b int) {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return
	}

	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}

// Len returns the number of elements in the structure.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}
