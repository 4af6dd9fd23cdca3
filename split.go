package cmaptools

import "sort"

// splitStops partitions an ordered stop list at a strictly interior hinge
// into a lower part (positions <= hinge) and an upper part (positions >=
// hinge). Positions stay in the source domain; callers renormalize each
// side.
//
// Three cases at the hinge:
//   - coincident stops with different colors (a discontinuity): the lower
//     side ends with the first coincident stop, the upper side starts with
//     the last, so the jump is preserved without interpolating across it;
//   - a single ordinary stop: both sides share that stop and its color;
//   - no stop: a new stop is synthesized by interpolating the enclosing
//     segment and shared by both sides, keeping the colormap continuous
//     there.
func splitStops(stops []ColorStop, hinge float64) (lower, upper []ColorStop) {
	i := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position >= hinge
	})

	if i < len(stops) && stops[i].Position == hinge {
		j := i
		for j+1 < len(stops) && stops[j+1].Position == hinge {
			j++
		}
		lower = append(lower, stops[:i+1]...)
		upper = append(upper, stops[j:]...)
		return lower, upper
	}

	// Hinge falls strictly inside a segment: synthesize the boundary stop.
	boundary := ColorStop{Position: hinge, Color: sampleStops(stops, hinge)}
	lower = append(lower, stops[:i]...)
	lower = append(lower, boundary)
	upper = append(upper, boundary)
	upper = append(upper, stops[i:]...)
	return lower, upper
}
