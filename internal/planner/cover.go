package planner

// MinimumCover picks a small subset of roster entries whose material sets
// still cover every material any entry requires. Greedy: repeatedly take the
// entry adding the most uncovered materials, lowest ID winning ties so the
// result is deterministic.
//
// requirements maps a roster entry ID to the material IDs its full
// progression consumes.
func MinimumCover(requirements map[int64][]int64) []int64 {
	remaining := make(map[int64]map[int64]bool, len(requirements))
	uncovered := make(map[int64]bool)
	for id, materials := range requirements {
		set := make(map[int64]bool, len(materials))
		for _, m := range materials {
			set[m] = true
			uncovered[m] = true
		}
		remaining[id] = set
	}

	var picked []int64
	for len(uncovered) > 0 {
		bestID := int64(-1)
		bestGain := 0
		for id, set := range remaining {
			gain := 0
			for m := range set {
				if uncovered[m] {
					gain++
				}
			}
			if gain > bestGain || (gain == bestGain && gain > 0 && id < bestID) {
				bestGain = gain
				bestID = id
			}
		}
		if bestID < 0 {
			break
		}

		for m := range remaining[bestID] {
			delete(uncovered, m)
		}
		delete(remaining, bestID)
		picked = append(picked, bestID)
	}
	return picked
}
