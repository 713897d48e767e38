package chat

import "time"

// Sender values for Message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message persists one conversation turn in the session log.
// QuickReplies records which suggestion ids were offered on bot turns.
type Message struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	Sender       string    `json:"sender"`
	Content      string    `json:"content"`
	QuickReplies []string  `json:"quickReplies,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
