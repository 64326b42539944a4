package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ConversationRemove is a per-user tombstone on a conversation, upserted on
// (user_id, conversation_id).
//
// MessagesRemoved=false: the user removed the whole thread; the conversation
// must never be listed for them again.
// MessagesRemoved=true: the user cleared history; only messages with
// id > LastMessageID remain visible. The watermark is a fixed lower bound,
// not a rolling window.
type ConversationRemove struct {
	bun.BaseModel `bun:"table:conversation_removes,alias:cr"`

	ID             int64 `bun:",pk,autoincrement"`
	UserID         int64 `bun:",notnull,unique:uq_user_conversation"`
	ConversationID int64 `bun:",notnull,unique:uq_user_conversation"`

	MessagesRemoved bool  `bun:",notnull,default:false"`
	LastMessageID   int64 `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
