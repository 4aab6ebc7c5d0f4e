package board

// compactLine slides and merges one line toward index 0 and returns the result.
// The input is not modified.
//
// The anchor is the position being filled, starting at the target edge. Each
// following tile either drops into an empty anchor, merges into an equal anchor
// that has not merged yet, or finalizes the anchor and becomes the next one.
func compactLine(line []Cell) []Cell {
	out := make([]Cell, len(line))
	copy(out, line)
	if len(out) < 2 {
		return out
	}

	anchor := 0
	merged := false
	for next := 1; next < len(out); next++ {
		v := out[next]
		if v.IsEmpty() {
			continue
		}

		switch {
		case out[anchor].IsEmpty():
			out[anchor], out[next] = v, Empty
		case out[anchor] == v && !merged:
			out[anchor], out[next] = v*2, Empty
			merged = true
		default:
			anchor++
			merged = false
			if anchor != next {
				out[anchor], out[next] = v, Empty
			}
		}
	}
	return out
}
