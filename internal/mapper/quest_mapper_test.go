package mapper

import (
	"testing"

	"worldstate-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func questSection() map[string]interface{} {
	return map[string]interface{}{
		"$meta": map[string]interface{}{},
		"t001": map[string]interface{}{
			"任务名称": pair("寻找线索"),
			"任务状态": pair("未接受"),
			"任务描述": pair("在村子里打听消息"),
			"奖励":   pair("铜币x10"),
		},
		"t002": map[string]interface{}{
			"任务名称": pair("送信"),
			"任务状态": pair("进行中"),
		},
		"t003": map[string]interface{}{
			"任务名称": pair("采药"),
			"任务状态": pair("已完成"),
		},
		"t004": map[string]interface{}{
			"任务状态": pair("奇怪状态"),
		},
	}
}

func TestToQuests(t *testing.T) {
	quests := NewQuestMapper().ToQuests(questSection())

	assert.Len(t, quests, 4)
	assert.Equal(t, "寻找线索", quests[0].Name)
	assert.Equal(t, entity.QuestAvailable, quests[0].Status)
	assert.Equal(t, "铜币x10", quests[0].Reward)
	assert.Equal(t, entity.QuestInProgress, quests[1].Status)
	assert.Equal(t, entity.QuestCompleted, quests[2].Status)
	// unknown raw status counts as available; name falls back to the key
	assert.Equal(t, entity.QuestAvailable, quests[3].Status)
	assert.Equal(t, "t004", quests[3].Name)
}

func TestPartition(t *testing.T) {
	m := NewQuestMapper()
	available, inProgress, completed := m.Partition(m.ToQuests(questSection()))

	assert.Len(t, available, 2)
	assert.Len(t, inProgress, 1)
	assert.Len(t, completed, 1)
	assert.Equal(t, "送信", inProgress[0].Name)
}
