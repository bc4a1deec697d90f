package mapper

import (
	"worldstate-be/internal/entity"
)

type QuestMapper struct{}

func NewQuestMapper() *QuestMapper {
	return &QuestMapper{}
}

// ToQuests flattens the 任务 section (quest key -> fields) into a
// deterministic, key-sorted list. A quest without 任务名称 falls back to its
// map key; an unknown 任务状态 counts as not yet accepted.
func (m *QuestMapper) ToQuests(section map[string]interface{}) []entity.QuestRecord {
	quests := []entity.QuestRecord{}
	if section == nil {
		return quests
	}

	for _, questKey := range sortedKeys(section) {
		if questKey == entity.MetaKey {
			continue
		}
		raw, ok := section[questKey].(map[string]interface{})
		if !ok {
			continue
		}

		name := entity.PairString(raw["任务名称"])
		if name == "" {
			name = questKey
		}

		quests = append(quests, entity.QuestRecord{
			Key:         questKey,
			Name:        name,
			Status:      entity.QuestStatusFromRaw(entity.PairString(raw["任务状态"])),
			Description: entity.PairString(raw["任务描述"]),
			Reward:      entity.PairString(raw["奖励"]),
		})
	}

	return quests
}

// Partition splits quests by status for the board's tabs.
func (m *QuestMapper) Partition(quests []entity.QuestRecord) (available, inProgress, completed []entity.QuestRecord) {
	available = []entity.QuestRecord{}
	inProgress = []entity.QuestRecord{}
	completed = []entity.QuestRecord{}
	for _, q := range quests {
		switch q.Status {
		case entity.QuestInProgress:
			inProgress = append(inProgress, q)
		case entity.QuestCompleted:
			completed = append(completed, q)
		default:
			available = append(available, q)
		}
	}
	return available, inProgress, completed
}
