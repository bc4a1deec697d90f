package entity

import "fmt"

// Defaults applied by the diary normalizer.
const (
	UnknownDate    = "未知日期"
	DefaultContent = "暂无内容"
)

// DiaryEntry is one normalized journal entry from the 摘要 section.
type DiaryEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

func NewDiaryEntryID(index int) string {
	return fmt.Sprintf("diary_%d", index)
}

func (e DiaryEntry) DiffFields() []string {
	return []string{e.Date, e.Content}
}
