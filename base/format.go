package base

import "strconv"

// formatFloat renders f the way the scalar value types in this package
// print themselves: the shortest decimal that round-trips, matching the
// "%v"-style behaviour callers expect from fmt.Stringer on a float.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
