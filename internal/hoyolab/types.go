package hoyolab

// Avatar is one entry of the calculator's character roster.
type Avatar struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ElementAttrID int64   `json:"element_attr_id"`
	SkillList     []Skill `json:"skill_list"`
}

// Skill is one talent group of an avatar. The calculator keys talent plans by
// group_id, not by the individual skill id.
type Skill struct {
	GroupID int64 `json:"group_id"`
}

// Weapon is one entry of the calculator's weapon roster.
type Weapon struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	MaxLevel int    `json:"max_level"`
}

// Material is one material row as reported by batch_compute. Num is the
// plan's total need, LackNum the shortfall after the account's stock is
// applied.
type Material struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Num     int64  `json:"num"`
	LackNum int64  `json:"lack_num"`
}

// ComputeItem is one slot of a batch_compute request. Avatar slots carry the
// avatar fields plus an embedded weapon plan (possibly empty); weapon-only
// slots carry just the weapon plan.
type ComputeItem struct {
	AvatarID           int64       `json:"avatar_id,omitempty"`
	AvatarLevelCurrent int         `json:"avatar_level_current,omitempty"`
	AvatarLevelTarget  int         `json:"avatar_level_target,omitempty"`
	ElementAttrID      int64       `json:"element_attr_id,omitempty"`
	SkillList          []SkillPlan `json:"skill_list,omitempty"`
	Weapon             *WeaponPlan `json:"weapon,omitempty"`
}

// SkillPlan is a talent progression inside a ComputeItem.
type SkillPlan struct {
	ID           int64 `json:"id"`
	LevelCurrent int   `json:"level_current"`
	LevelTarget  int   `json:"level_target"`
}

// WeaponPlan is a weapon progression inside a ComputeItem. The zero value
// marshals as {} which the API accepts as "no weapon".
type WeaponPlan struct {
	ID           int64 `json:"id,omitempty"`
	LevelCurrent int   `json:"level_current,omitempty"`
	LevelTarget  int   `json:"level_target,omitempty"`
}

// ItemConsume mirrors the per-slot consume lists of a batch_compute response.
// Slots come back in request order; there is no id field to join on.
type ItemConsume struct {
	AvatarConsume      []Material `json:"avatar_consume"`
	AvatarSkillConsume []Material `json:"avatar_skill_consume"`
	WeaponConsume      []Material `json:"weapon_consume"`
}

// Materials returns all consume lists of the slot flattened into one slice.
func (ic ItemConsume) Materials() []Material {
	out := make([]Material, 0, len(ic.AvatarConsume)+len(ic.AvatarSkillConsume)+len(ic.WeaponConsume))
	out = append(out, ic.AvatarConsume...)
	out = append(out, ic.AvatarSkillConsume...)
	out = append(out, ic.WeaponConsume...)
	return out
}

// BatchComputeResult is the data payload of a batch_compute response.
// OverallConsume aggregates every slot; AvailableMaterial lists the account's
// stock beyond what the plans consume.
type BatchComputeResult struct {
	Items             []ItemConsume `json:"items"`
	OverallConsume    []Material    `json:"overall_consume"`
	AvailableMaterial []Material    `json:"available_material"`
}
