package entity

// QuestStatus is the normalized quest lifecycle state.
type QuestStatus string

const (
	QuestAvailable  QuestStatus = "available"
	QuestInProgress QuestStatus = "inProgress"
	QuestCompleted  QuestStatus = "completed"
)

// Raw quest status values written by the model.
const (
	RawQuestAvailable  = "未接受"
	RawQuestInProgress = "进行中"
	RawQuestCompleted  = "已完成"
)

// QuestStatusFromRaw maps a raw status string to the normalized state.
// Anything unrecognized counts as available, matching how the board treats
// quests the model has not yet advanced.
func QuestStatusFromRaw(raw string) QuestStatus {
	switch raw {
	case RawQuestInProgress:
		return QuestInProgress
	case RawQuestCompleted:
		return QuestCompleted
	default:
		return QuestAvailable
	}
}

// QuestRecord is one normalized quest from the 任务 section. Key is the raw
// map key and addresses the quest in mutations.
type QuestRecord struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Status      QuestStatus `json:"status"`
	Description string      `json:"description"`
	Reward      string      `json:"reward"`
}

func (q QuestRecord) DiffFields() []string {
	return []string{q.Name, string(q.Status), q.Description, q.Reward}
}
