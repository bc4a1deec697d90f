package mapper

import (
	"testing"

	"worldstate-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestToCharacterSheet(t *testing.T) {
	section := map[string]interface{}{
		"名称": pair("小明"),
		"货币": pair(float64(120)),
		"性别": pair("男"),
		"当前着装": map[string]interface{}{
			"上衣": pair("布衫"),
			"鞋子": pair("草鞋"),
		},
	}

	sheet := NewStatusMapper().ToCharacterSheet(section)

	assert.NotNil(t, sheet)
	assert.Equal(t, "小明", sheet.Name)
	assert.Equal(t, float64(120), sheet.Currency)
	assert.Equal(t, "男", sheet.Gender)
	assert.Equal(t, entity.UnknownValue, sheet.Height)
	assert.Equal(t, "布衫", sheet.Equipment["上衣"])
	assert.Equal(t, "草鞋", sheet.Equipment["鞋子"])
	assert.Equal(t, "", sheet.Equipment["头部"])
}

func TestToCharacterSheetAbsent(t *testing.T) {
	assert.Nil(t, NewStatusMapper().ToCharacterSheet(nil))
}

func TestToNPCSheets(t *testing.T) {
	section := map[string]interface{}{
		"$meta": map[string]interface{}{},
		"小红": map[string]interface{}{
			"名称":   pair("小红"),
			"好感度":  pair(float64(55)),
			"内心想法": pair("今天有点开心"),
			"人物记忆": []interface{}{
				[]interface{}{entity.ExtensibleKey, "第一次见面", "一起吃过饭"},
				"记忆列表",
			},
		},
		"无名": map[string]interface{}{
			"好感度": pair(float64(10)),
		},
	}

	sheets := NewStatusMapper().ToNPCSheets(section)

	assert.Len(t, sheets, 2)
	assert.Equal(t, "小红", sheets[0].Name)
	assert.Equal(t, float64(55), sheets[0].Favor)
	assert.Equal(t, []string{"第一次见面", "一起吃过饭"}, sheets[0].Memories)
	// name falls back to the map key
	assert.Equal(t, "无名", sheets[1].Name)
	assert.Empty(t, sheets[1].Memories)
}

func TestEquipmentLineStable(t *testing.T) {
	a := entity.CharacterSheet{Equipment: map[string]string{"上衣": "布衫", "鞋子": "草鞋"}}
	b := entity.CharacterSheet{Equipment: map[string]string{"鞋子": "草鞋", "上衣": "布衫"}}
	assert.Equal(t, a.DiffFields(), b.DiffFields())
}
