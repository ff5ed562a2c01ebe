package gridgraph

// Neighbors builds the NeighborMap of gg under gg.Conn.
// Complexity: O(R×C×d) time and memory.
func (gg *GridGraph) Neighbors() NeighborMap {
	return buildNeighbors(gg.Rows, gg.Cols, gg.offsets)
}

// BuildNeighbors builds the NeighborMap of a rows×cols grid under conn
// without needing cell values.
// Returns ErrEmptyGrid for non-positive dimensions and
// ErrUnknownConnectivity for an unsupported mode.
func BuildNeighbors(rows, cols int, conn Connectivity) (NeighborMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if !conn.Valid() {
		return nil, ErrUnknownConnectivity
	}
	return buildNeighbors(rows, cols, offsetsFor(conn)), nil
}

// buildNeighbors bounds-checks every offset around every cell. All lists
// share one backing array; each is capped so appends cannot bleed into
// the next cell's list.
func buildNeighbors(rows, cols int, offsets [][2]int) NeighborMap {
	n := rows * cols
	backing := make([]int, 0, n*len(offsets))
	nm := make(NeighborMap, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			start := len(backing)
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				backing = append(backing, nr*cols+nc)
			}
			nm[r*cols+c] = backing[start:len(backing):len(backing)]
		}
	}
	return nm
}

// Len returns the number of cells in the map.
func (nm NeighborMap) Len() int {
	return len(nm)
}

// Degree returns the number of neighbours of cell i.
func (nm NeighborMap) Degree(i int) int {
	return len(nm[i])
}

// EdgeEndpoints returns Σ_i |N(i)|, the total weight S0 of the binary
// weights matrix. Each undirected adjacency is counted twice.
func (nm NeighborMap) EdgeEndpoints() int {
	total := 0
	for _, ns := range nm {
		total += len(ns)
	}
	return total
}

// IsSymmetric reports whether j ∈ N(i) implies i ∈ N(j) for every pair and
// no cell lists itself.
// Complexity: O(n×d²).
func (nm NeighborMap) IsSymmetric() bool {
	for i, ns := range nm {
		for _, j := range ns {
			if j == i || j < 0 || j >= len(nm) || !contains(nm[j], i) {
				return false
			}
		}
	}
	return true
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
