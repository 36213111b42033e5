package generate

// OffDiagonal returns v² − v, the number of directed edge slots in a
// v-vertex matrix once the diagonal is excluded.
func OffDiagonal(v int) int {
	return v*v - v
}

// Capacity returns the largest edge count Generate can place for a
// v-vertex graph under opts.
//
// Only oriented graphs with contours allowed can use every off-diagonal
// cell. An undirected edge occupies two symmetric cells, and NoContours
// leaves only the cells above the diagonal, so either restriction halves
// the bound. Combining them does not halve it again: an undirected
// contour-free edge still fills one upper and one lower cell.
func Capacity(v int, opts Options) int {
	slots := OffDiagonal(v)
	if !opts.Oriented || opts.NoContours {
		return slots / 2
	}
	return slots
}
