package message

import (
	"time"

	"github.com/GolfPlayed/talk/internal/user"
)

// Input commands

type SendCommand struct {
	ConversationID int64
	SenderID       int64
	Body           string
}

// Output DTOs

type MessageDTO struct {
	ID             int64        `json:"id"`
	ConversationID int64        `json:"conversation_id"`
	Sender         user.Summary `json:"user"`
	Body           string       `json:"message"`
	IsSeen         bool         `json:"is_seen"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Window is one visible page of a conversation plus the full recipient list.
// Recipients are independent of paging.
type Window struct {
	Messages   []MessageDTO   `json:"messages"`
	Recipients []user.Summary `json:"withUser"`
}
