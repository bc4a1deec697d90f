package mapper

import (
	"worldstate-be/internal/entity"
)

type StatusMapper struct{}

func NewStatusMapper() *StatusMapper {
	return &StatusMapper{}
}

// ToCharacterSheet extracts the player sheet from the 用户 section. Missing
// string fields default to 未知, numbers to zero. Returns nil when the
// section is absent.
func (m *StatusMapper) ToCharacterSheet(section map[string]interface{}) *entity.CharacterSheet {
	if section == nil {
		return nil
	}

	return &entity.CharacterSheet{
		Name:        stringOr(section, "名称", entity.UnknownValue),
		Currency:    entity.PairNumber(section["货币"]),
		Gender:      stringOr(section, "性别", entity.UnknownValue),
		Age:         entity.PairNumber(section["年龄"]),
		Height:      stringOr(section, "身高", entity.UnknownValue),
		Weight:      stringOr(section, "体重", entity.UnknownValue),
		Personality: stringOr(section, "性格", entity.UnknownValue),
		Appearance:  stringOr(section, "外貌描述", entity.UnknownValue),
		Equipment:   equipmentMap(section),
	}
}

// ToNPCSheets extracts every NPC sheet from the NPC section, keyed in sorted
// order for deterministic output. A sheet with no 名称 falls back to its map
// key.
func (m *StatusMapper) ToNPCSheets(section map[string]interface{}) []entity.NPCSheet {
	sheets := []entity.NPCSheet{}
	if section == nil {
		return sheets
	}

	for _, npcKey := range sortedKeys(section) {
		if npcKey == entity.MetaKey {
			continue
		}
		npc, ok := section[npcKey].(map[string]interface{})
		if !ok {
			continue
		}

		name := entity.PairString(npc["名称"])
		if name == "" {
			name = npcKey
		}

		sheets = append(sheets, entity.NPCSheet{
			ID:            npcKey,
			Name:          name,
			FriendID:      entity.PairString(npc["好友ID"]),
			Gender:        stringOr(npc, "性别", entity.UnknownValue),
			Age:           entity.PairNumber(npc["年龄"]),
			Favor:         entity.PairNumber(npc["好感度"]),
			Height:        stringOr(npc, "身高", entity.UnknownValue),
			Weight:        stringOr(npc, "体重", entity.UnknownValue),
			Personality:   stringOr(npc, "性格", entity.UnknownValue),
			Appearance:    stringOr(npc, "外貌描述", entity.UnknownValue),
			InnerThoughts: entity.PairString(npc["内心想法"]),
			Equipment:     equipmentMap(npc),
			Memories:      memories(npc["人物记忆"]),
		})
	}

	return sheets
}

func stringOr(obj map[string]interface{}, key, fallback string) string {
	if s := entity.PairString(obj[key]); s != "" {
		return s
	}
	return fallback
}

func equipmentMap(sheet map[string]interface{}) map[string]string {
	eq := make(map[string]string, len(entity.EquipmentSlots))
	clothing, _ := sheet["当前着装"].(map[string]interface{})
	for _, slot := range entity.EquipmentSlots {
		if clothing == nil {
			eq[slot] = ""
			continue
		}
		eq[slot] = entity.PairString(clothing[slot])
	}
	return eq
}

// memories unwraps 人物记忆, a pair whose value is a list of strings with an
// extensible marker mixed in.
func memories(raw interface{}) []string {
	out := []string{}
	pair, ok := raw.([]interface{})
	if !ok || len(pair) == 0 {
		return out
	}
	list, ok := pair[0].([]interface{})
	if !ok {
		return out
	}
	for _, elem := range list {
		s, ok := elem.(string)
		if !ok || s == "" || s == entity.ExtensibleKey {
			continue
		}
		out = append(out, s)
	}
	return out
}
