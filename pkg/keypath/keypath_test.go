package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDoc() map[string]interface{} {
	return map[string]interface{}{
		"用户": map[string]interface{}{
			"当前着装": map[string]interface{}{
				"上衣": []interface{}{"布衫", "身上穿着的"},
			},
		},
		"道具": map[string]interface{}{
			"日常用品": map[string]interface{}{
				"苹果": map[string]interface{}{
					"数量": []interface{}{float64(3), "个数"},
				},
			},
		},
	}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()

	v, ok := Get(doc, "用户.当前着装.上衣[0]")
	assert.True(t, ok)
	assert.Equal(t, "布衫", v)

	v, ok = Get(doc, "道具.日常用品.苹果.数量[0]")
	assert.True(t, ok)
	assert.Equal(t, float64(3), v)

	_, ok = Get(doc, "用户.当前着装.鞋子[0]")
	assert.False(t, ok)

	_, ok = Get(doc, "用户.当前着装.上衣[5]")
	assert.False(t, ok)

	_, ok = Get(doc, "")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	doc := sampleDoc()

	err := Set(doc, "用户.当前着装.上衣[0]", "新衣")
	assert.NoError(t, err)
	v, _ := Get(doc, "用户.当前着装.上衣[0]")
	assert.Equal(t, "新衣", v)

	// missing map segments are created on the way down
	err = Set(doc, "任务.寻找线索.任务状态", []interface{}{"进行中", ""})
	assert.NoError(t, err)
	v, ok := Get(doc, "任务.寻找线索.任务状态[0]")
	assert.True(t, ok)
	assert.Equal(t, "进行中", v)

	// slices are never grown implicitly
	err = Set(doc, "用户.当前着装.上衣[4]", "x")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	doc := sampleDoc()

	err := Delete(doc, "道具.日常用品.苹果")
	assert.NoError(t, err)
	_, ok := Get(doc, "道具.日常用品.苹果")
	assert.False(t, ok)

	// deleting something absent is a no-op
	assert.NoError(t, Delete(doc, "道具.日常用品.香蕉"))

	assert.Error(t, Delete(doc, "用户.当前着装.上衣[0]"))
}
