package inventory

// Vendor material ID ranges. Within a crafting ladder, three of a rarity
// craft into one of the next; the calculator nets lower-rarity surplus
// against higher-rarity shortfalls when pricing a plan, so the derived owned
// count of a higher rarity includes phantom stock crafted from the surplus
// below it. ConvertSurplus backs that conversion out again.
const (
	gemRangeLow      = 104100 // ascension gems sit between these two,
	gemRangeHigh     = 104300 // four rarities per element
	bookRangeLow     = 104300 // talent books, three rarities per series
	bookRangeHigh    = 113000
	crownID          = 104319 // Crown of Insight, not part of any ladder
	weaponAscension  = 114000 // weapon ascension materials, four rarities
	conversionFactor = 3
)

func isLadderOfFour(id int64) bool {
	return id > weaponAscension || (id > gemRangeLow && id < gemRangeHigh)
}

func isLadderOfThree(id int64) bool {
	return id > bookRangeLow && id < bookRangeHigh && id != crownID
}

// ConvertSurplus removes phantom crafted stock from higher rarities. Items
// must be in descending ID order (Tally's output); within that order each
// consecutive run of 4 (gems, weapon ascension) or 3 (books) IDs is one
// crafting ladder. The input is not modified.
func ConvertSurplus(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	var fours, threes []int
	for i, it := range out {
		switch {
		case isLadderOfFour(it.ID):
			fours = append(fours, i)
		case isLadderOfThree(it.ID):
			threes = append(threes, i)
		}
	}

	for _, ladder := range ladders(fours, 4) {
		convertLadder(out, ladder)
	}
	for _, ladder := range ladders(threes, 3) {
		convertLadder(out, ladder)
	}
	return out
}

// ladders splits ID-descending indexes into runs of the given size and flips
// each run so index 0 is the lowest rarity.
func ladders(idx []int, size int) [][]int {
	var groups [][]int
	for start := 0; start < len(idx); start += size {
		end := min(start+size, len(idx))
		group := make([]int, 0, end-start)
		for i := end - 1; i >= start; i-- {
			group = append(group, idx[i])
		}
		groups = append(groups, group)
	}
	return groups
}

// convertLadder subtracts each rarity's surplus, converted at 3:1 per step,
// from the first higher rarity that has no surplus of its own. A rarity with
// surplus needs no crafted stock, so the bottleneck rarity above it is the
// one the calculator padded.
func convertLadder(items []Item, ladder []int) {
	for pos, i := range ladder {
		if items[i].Extra <= 0 {
			continue
		}
		for next := pos + 1; next < len(ladder); next++ {
			j := ladder[next]
			if items[j].Extra == 0 {
				items[j].Owned -= items[i].Extra / pow3(next-pos)
				break
			}
		}
	}
}

func pow3(n int) int64 {
	result := int64(1)
	for ; n > 0; n-- {
		result *= conversionFactor
	}
	return result
}
