package entity

// Message roles as recorded by the chat host.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// FloorLatest addresses the newest state the store holds, used when no
// assistant-authored floor exists yet.
const FloorLatest = -1

// Message is one chat floor. ID is the zero-based floor index.
type Message struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}
