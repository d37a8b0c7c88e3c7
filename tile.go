package atperf

// TileRange is a half-open index range [Start, End) over one matrix
// dimension, produced by Tiles. The final range along a dimension may be
// narrower than the nominal tile size.
type TileRange struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r TileRange) Len() int {
	return r.End - r.Start
}

// Tiles splits [0, extent) into ranges of at most size indices, stepping
// by size and clipping the last range at extent. A non-positive extent
// yields no ranges. The planner is dimension-agnostic: the same sequence
// is used for the row, column, and reduction dimensions.
func Tiles(extent, size int) []TileRange {
	if extent <= 0 || size <= 0 {
		return nil
	}
	ranges := make([]TileRange, 0, (extent+size-1)/size)
	for start := 0; start < extent; start += size {
		end := start + size
		if end > extent {
			end = extent
		}
		ranges = append(ranges, TileRange{Start: start, End: end})
	}
	return ranges
}
