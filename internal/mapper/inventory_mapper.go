package mapper

import (
	"sort"
	"strconv"

	"worldstate-be/internal/entity"
)

type InventoryMapper struct{}

func NewInventoryMapper() *InventoryMapper {
	return &InventoryMapper{}
}

// ToItems flattens the 道具 section (category -> item key -> fields) into a
// deterministic list. Metadata markers are skipped, entries without a name or
// with a non-positive quantity are dropped. Categories and item keys are
// walked in sorted order so identical documents always produce identical
// lists.
func (m *InventoryMapper) ToItems(section map[string]interface{}) []entity.Item {
	items := []entity.Item{}
	if section == nil {
		return items
	}

	for _, category := range sortedKeys(section) {
		if category == entity.MetaKey {
			continue
		}
		categoryData, ok := section[category].(map[string]interface{})
		if !ok {
			continue
		}

		for _, itemKey := range sortedKeys(categoryData) {
			if itemKey == entity.MetaKey {
				continue
			}
			raw, ok := categoryData[itemKey].(map[string]interface{})
			if !ok {
				continue
			}

			name := entity.PairString(raw["名称"])
			if name == "" {
				name = itemKey
			}
			quantity := pairQuantity(raw["数量"])
			if name == "" || quantity <= 0 {
				continue
			}

			description := firstNonEmpty(
				entity.PairString(raw["效果"]),
				entity.PairString(raw["描述"]),
				entity.PairString(raw["作用"]),
				entity.PairString(raw["说明"]),
			)
			if description == "" {
				description = entity.DefaultDescription
			}
			quality := entity.PairString(raw["品质"])
			if quality == "" {
				quality = entity.DefaultQuality
			}

			items = append(items, entity.Item{
				ID:          entity.NewItemID(category, itemKey),
				Key:         itemKey,
				Name:        name,
				Category:    category,
				Description: description,
				Quantity:    quantity,
				Quality:     quality,
			})
		}
	}

	return items
}

// pairQuantity tolerates numbers stored as strings, as the model sometimes
// writes them.
func pairQuantity(raw interface{}) int {
	switch v := entity.PairValue(raw).(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
