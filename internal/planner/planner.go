// Package planner turns the calculator roster into batch_compute work: full
// progression plans per roster entry, a minimum roster subset that still
// touches every material type, and fixed-size request chunks.
package planner

import "github.com/nepscript/goodsync/internal/hoyolab"

const (
	avatarLevelTarget = 90
	skillLevelTarget  = 10

	// ChunkSize is the most compute slots the calculator accepts per call.
	ChunkSize = 200
)

// AvatarItem plans the full progression for one avatar: level 1 to 90 and
// every talent 1 to 10. Pricing the whole plan makes the calculator name
// every material type the avatar can ever consume.
func AvatarItem(a hoyolab.Avatar) hoyolab.ComputeItem {
	skills := make([]hoyolab.SkillPlan, 0, len(a.SkillList))
	for _, s := range a.SkillList {
		skills = append(skills, hoyolab.SkillPlan{
			ID:           s.GroupID,
			LevelCurrent: 1,
			LevelTarget:  skillLevelTarget,
		})
	}
	return hoyolab.ComputeItem{
		AvatarID:           a.ID,
		AvatarLevelCurrent: 1,
		AvatarLevelTarget:  avatarLevelTarget,
		ElementAttrID:      a.ElementAttrID,
		SkillList:          skills,
		Weapon:             &hoyolab.WeaponPlan{},
	}
}

// WeaponItem plans the full progression for one weapon, level 1 to its
// rarity-dependent cap.
func WeaponItem(w hoyolab.Weapon) hoyolab.ComputeItem {
	return hoyolab.ComputeItem{
		Weapon: &hoyolab.WeaponPlan{
			ID:           w.ID,
			LevelCurrent: 1,
			LevelTarget:  w.MaxLevel,
		},
	}
}

// Repeat returns count copies of the item. The calculator multiplies material
// needs per slot, so repeating a plan raises the ceiling up to which the
// account's stock of its materials is reported.
func Repeat(item hoyolab.ComputeItem, count int) []hoyolab.ComputeItem {
	out := make([]hoyolab.ComputeItem, count)
	for i := range out {
		out[i] = item
	}
	return out
}

// Pair embeds weapon plans into avatar slots so a single compute slot counts
// both. Leftover weapons (or avatars) ride along unpaired.
func Pair(avatars, weapons []hoyolab.ComputeItem) []hoyolab.ComputeItem {
	out := make([]hoyolab.ComputeItem, 0, max(len(avatars), len(weapons)))

	n := min(len(avatars), len(weapons))
	for i := 0; i < n; i++ {
		paired := avatars[i]
		paired.Weapon = weapons[i].Weapon
		out = append(out, paired)
	}

	out = append(out, avatars[n:]...)
	out = append(out, weapons[n:]...)
	return out
}

// Chunk splits items into slices of at most size elements, preserving order.
func Chunk(items []hoyolab.ComputeItem, size int) [][]hoyolab.ComputeItem {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	chunks := make([][]hoyolab.ComputeItem, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
