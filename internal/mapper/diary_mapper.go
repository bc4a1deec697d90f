package mapper

import (
	"sort"

	"worldstate-be/internal/entity"
)

type DiaryMapper struct{}

func NewDiaryMapper() *DiaryMapper {
	return &DiaryMapper{}
}

// ToEntries parses the 摘要 value. Two shapes occur in the wild:
//
//	[[entry, entry, ...], "description"]   (wrapped pair)
//	[entry, entry, ...]                    (bare list)
//
// Both yield the same entries. Extensible markers are skipped, non-object
// elements ignored. Entries sort newest-first with unknown dates last.
func (m *DiaryMapper) ToEntries(raw interface{}) []entity.DiaryEntry {
	entries := []entity.DiaryEntry{}

	list, ok := raw.([]interface{})
	if !ok {
		return entries
	}
	if len(list) > 0 {
		if inner, ok := list[0].([]interface{}); ok {
			list = inner
		}
	}

	for i, elem := range list {
		if s, ok := elem.(string); ok && s == entity.ExtensibleKey {
			continue
		}
		obj, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}

		date := stringField(obj, "日期", "date")
		if date == "" {
			date = entity.UnknownDate
		}
		content := stringField(obj, "内容", "content")
		if content == "" {
			content = entity.DefaultContent
		}

		entries = append(entries, entity.DiaryEntry{
			ID:      entity.NewDiaryEntryID(i),
			Date:    date,
			Content: content,
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Date == entity.UnknownDate {
			return false
		}
		if entries[b].Date == entity.UnknownDate {
			return true
		}
		return entries[a].Date > entries[b].Date
	})

	return entries
}

func stringField(obj map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
