package gridgraph

// Regions finds all contiguous groups of cells that share a label, according
// to gg.Conn connectivity. label returns the cell's label and whether the
// cell takes part at all; cells reporting false are treated as background.
//
// Regions are returned in order of their first (smallest) index, scanning
// row-major; cells inside a region are listed in BFS order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) Regions(label func(idx int) (string, bool)) []Region {
	total := gg.Len()
	seen := make([]bool, total)
	labels := make([]string, total)
	active := make([]bool, total)
	for i := 0; i < total; i++ {
		labels[i], active[i] = label(i)
	}

	var regions []Region
	for i0 := 0; i0 < total; i0++ {
		if !active[i0] || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := gg.Coordinate(u)
			for _, d := range gg.offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !gg.InBounds(vr, vc) {
					continue
				}
				vi := gg.Index(vr, vc)
				if seen[vi] || !active[vi] || labels[vi] != labels[i0] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, Region{Label: labels[i0], Cells: queue})
	}
	return regions
}
