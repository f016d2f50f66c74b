// Package inventory reduces batch_compute results to the account's owned
// material counts.
package inventory

import (
	"sort"

	"github.com/nepscript/goodsync/internal/hoyolab"
)

// Item is one distinct material with its derived owned quantity.
type Item struct {
	ID    int64
	Name  string
	Extra int64 // stock beyond what the priced plans consume
	Owned int64
}

// Tally merges batch_compute results into owned counts per material. For each
// material the calculator reports the plans' total need (num), the shortfall
// after applying the account's stock (lack_num), and any stock beyond the
// need (available_material). Owned stock is therefore num - lack_num + extra.
//
// The same material appears in every chunk whose plans consume it; those rows
// describe the same inventory entry, so duplicates keep the largest derived
// value instead of summing.
func Tally(results []*hoyolab.BatchComputeResult) []Item {
	byID := make(map[int64]Item)
	for _, res := range results {
		available := make(map[int64]int64, len(res.AvailableMaterial))
		for _, m := range res.AvailableMaterial {
			available[m.ID] = m.Num
		}

		for _, m := range res.OverallConsume {
			extra := available[m.ID]
			owned := m.Num - m.LackNum + extra

			cur, ok := byID[m.ID]
			if !ok || owned > cur.Owned {
				byID[m.ID] = Item{ID: m.ID, Name: m.Name, Extra: extra, Owned: owned}
			}
		}
	}

	items := make([]Item, 0, len(byID))
	for _, it := range byID {
		items = append(items, it)
	}
	// Descending ID order groups each crafting ladder's rarities together,
	// which ConvertSurplus relies on.
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}
