package engine

// DepthBuffer holds the nearest corrected wall distance of every screen column.
type DepthBuffer []float64

func NewDepthBuffer(width int) DepthBuffer {
	return make(DepthBuffer, width)
}

// Band writes dist into the columns [start, start+width) that are inside the buffer.
func (d DepthBuffer) Band(start, width int, dist float64) {
	for i := start; i < start+width && i < len(d); i++ {
		if i >= 0 {
			d[i] = dist
		}
	}
}

// Occludes reports whether the wall recorded at column x hides something at depth.
// Columns outside the buffer always occlude.
func (d DepthBuffer) Occludes(x int, depth float64) bool {
	if x < 0 || x >= len(d) {
		return true
	}
	return depth >= d[x]
}
