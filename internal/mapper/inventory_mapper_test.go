package mapper

import (
	"testing"

	"worldstate-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func pair(v interface{}) []interface{} {
	return []interface{}{v, ""}
}

func TestToItemsFlattensCategories(t *testing.T) {
	section := map[string]interface{}{
		"$meta": map[string]interface{}{"extensible": true},
		"日常用品": map[string]interface{}{
			"苹果": map[string]interface{}{
				"名称": pair("苹果"),
				"数量": pair(float64(3)),
				"效果": pair("恢复体力"),
				"品质": pair("优秀"),
			},
		},
		"装备": map[string]interface{}{
			"布衫": map[string]interface{}{
				"名称": pair("布衫"),
				"数量": pair(float64(2)),
			},
		},
	}

	items := NewInventoryMapper().ToItems(section)

	assert.Len(t, items, 2)
	// sorted category order: 日常用品 < 装备
	assert.Equal(t, "苹果", items[0].Name)
	assert.Equal(t, "日常用品", items[0].Category)
	assert.Equal(t, "恢复体力", items[0].Description)
	assert.Equal(t, "优秀", items[0].Quality)
	assert.Equal(t, 3, items[0].Quantity)

	assert.Equal(t, "布衫", items[1].Name)
	assert.Equal(t, entity.DefaultDescription, items[1].Description)
	assert.Equal(t, entity.DefaultQuality, items[1].Quality)
}

func TestToItemsDropsInvalidEntries(t *testing.T) {
	section := map[string]interface{}{
		"杂物": map[string]interface{}{
			"$meta": map[string]interface{}{},
			"空瓶": map[string]interface{}{
				"名称": pair("空瓶"),
				"数量": pair(float64(0)),
			},
			"碎片": map[string]interface{}{
				"名称": pair("碎片"),
				"数量": pair(float64(-1)),
			},
			"药水": map[string]interface{}{
				"名称": pair("药水"),
				"数量": pair(float64(1)),
			},
		},
	}

	items := NewInventoryMapper().ToItems(section)

	assert.Len(t, items, 1)
	assert.Equal(t, "药水", items[0].Name)
}

func TestToItemsDescriptionFallbackOrder(t *testing.T) {
	section := map[string]interface{}{
		"c": map[string]interface{}{
			"a": map[string]interface{}{
				"名称": pair("a"),
				"数量": pair(float64(1)),
				"描述": pair("次选"),
				"作用": pair("再次"),
			},
		},
	}

	items := NewInventoryMapper().ToItems(section)
	assert.Equal(t, "次选", items[0].Description)
}

func TestToItemsNameFallsBackToKey(t *testing.T) {
	section := map[string]interface{}{
		"c": map[string]interface{}{
			"神秘钥匙": map[string]interface{}{
				"数量": pair(float64(1)),
			},
		},
	}

	items := NewInventoryMapper().ToItems(section)
	assert.Len(t, items, 1)
	assert.Equal(t, "神秘钥匙", items[0].Name)
}

func TestToItemsDeterministicOrder(t *testing.T) {
	section := map[string]interface{}{
		"b": map[string]interface{}{
			"y": map[string]interface{}{"名称": pair("y"), "数量": pair(float64(1))},
			"x": map[string]interface{}{"名称": pair("x"), "数量": pair(float64(1))},
		},
		"a": map[string]interface{}{
			"z": map[string]interface{}{"名称": pair("z"), "数量": pair(float64(1))},
		},
	}

	m := NewInventoryMapper()
	first := m.ToItems(section)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.ToItems(section))
	}
	assert.Equal(t, "z", first[0].Name)
	assert.Equal(t, "x", first[1].Name)
	assert.Equal(t, "y", first[2].Name)
}

func TestToItemsNilSection(t *testing.T) {
	assert.Empty(t, NewInventoryMapper().ToItems(nil))
}
