package path

// Edge is a directed line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// CollectEdges flattens path elements into directed edges. Each subpath
// is closed to its own start point, whether or not the path contains an
// explicit Close, so the resulting edge set always encloses a region.
// Edges never connect separate subpaths. Zero-length edges are dropped.
func CollectEdges(elements []PathElement) []Edge {
	var (
		edges   []Edge
		pts     []Point // scratch for flattened curve points
		current Point
		start   Point // start of current subpath
		open    bool  // subpath has at least one segment
	)

	appendEdge := func(p1 Point) {
		if current != p1 {
			edges = append(edges, Edge{P0: current, P1: p1})
		}
		current = p1
	}
	closeSubpath := func() {
		if open && current != start {
			edges = append(edges, Edge{P0: current, P1: start})
		}
		current = start
		open = false
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			closeSubpath()
			start = e.Point
			current = e.Point

		case LineTo:
			open = true
			appendEdge(e.Point)

		case QuadTo:
			open = true
			pts = FlattenQuad(current, e.Control, e.Point, Tolerance, pts[:0])
			for _, p := range pts {
				appendEdge(p)
			}

		case CubicTo:
			open = true
			pts = FlattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance, pts[:0])
			for _, p := range pts {
				appendEdge(p)
			}

		case Close:
			closeSubpath()
		}
	}
	closeSubpath()

	return edges
}
