package good

import "github.com/nepscript/goodsync/internal/inventory"

// excludedMaterials are the material types the calculator reports that GOOD
// trackers do not accept as inventory. Dropping them is intentional, never an
// error. This is lookup data, kept apart from the mapping logic so a vendor
// taxonomy change only touches this table.
var excludedMaterials = map[string]bool{
	"AdventurersExperience": true,
	"WanderersAdvice":       true,
	"HerosWit":              true,
	"Mora":                  true,
}

// MapMaterials translates tallied vendor materials into GOOD entries keyed by
// canonical material key. Excluded names are silently dropped; distinct
// vendor rows normalizing to the same key have their counts summed; final
// quantities are clamped at zero.
func MapMaterials(items []inventory.Item) map[string]int64 {
	out := make(map[string]int64, len(items))
	for _, it := range items {
		key := Key(it.Name)
		if key == "" || excludedMaterials[key] {
			continue
		}
		out[key] += it.Owned
	}

	for key, n := range out {
		if n < 0 {
			out[key] = 0
		}
	}
	return out
}
