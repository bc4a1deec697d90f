package mapper

import (
	"testing"

	"worldstate-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestToEntriesBothShapesEquivalent(t *testing.T) {
	entriesRaw := []interface{}{
		entity.ExtensibleKey,
		map[string]interface{}{"日期": "2024-01-01", "内容": "第一天"},
		map[string]interface{}{"日期": "2024-01-02", "内容": "第二天"},
	}

	bare := entriesRaw
	wrapped := []interface{}{entriesRaw, "日记摘要"}

	m := NewDiaryMapper()
	assert.Equal(t, m.ToEntries(bare), m.ToEntries(wrapped))
}

func TestToEntriesSortsNewestFirst(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"日期": "2024-01-01", "内容": "旧"},
		map[string]interface{}{"内容": "无日期"},
		map[string]interface{}{"日期": "2024-03-05", "内容": "新"},
	}

	entries := NewDiaryMapper().ToEntries(raw)

	assert.Len(t, entries, 3)
	assert.Equal(t, "2024-03-05", entries[0].Date)
	assert.Equal(t, "2024-01-01", entries[1].Date)
	assert.Equal(t, entity.UnknownDate, entries[2].Date)
}

func TestToEntriesSkipsMarkersAndNonObjects(t *testing.T) {
	raw := []interface{}{
		entity.ExtensibleKey,
		"随便一个字符串",
		float64(42),
		map[string]interface{}{"日期": "2024-02-02", "内容": "有效"},
	}

	entries := NewDiaryMapper().ToEntries(raw)

	assert.Len(t, entries, 1)
	assert.Equal(t, "有效", entries[0].Content)
}

func TestToEntriesContentDefault(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"日期": "2024-02-02"},
	}

	entries := NewDiaryMapper().ToEntries(raw)
	assert.Equal(t, entity.DefaultContent, entries[0].Content)
}

func TestToEntriesNonArray(t *testing.T) {
	assert.Empty(t, NewDiaryMapper().ToEntries(nil))
	assert.Empty(t, NewDiaryMapper().ToEntries("oops"))
}
