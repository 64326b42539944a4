package models

import (
	"time"

	"github.com/uptrace/bun"

	User "github.com/GolfPlayed/talk/internal/user/model"
)

// Message belongs to a conversation. Removal is per side: a message stays in
// the table forever and each side hides its own copy through the
// deleted_from_* flags. Conversation-level clearing is handled separately by
// the conversation_removes watermark.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID             int64 `bun:",pk,autoincrement"`
	ConversationID int64 `bun:",notnull"`

	// Sender.
	UserID int64      `bun:",notnull"`
	Sender *User.User `bun:"rel:belongs-to,join:user_id=id"`

	Message string `bun:",notnull"`

	IsSeen              bool `bun:",notnull,default:false"`
	DeletedFromSender   bool `bun:",notnull,default:false"`
	DeletedFromReceiver bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// VisibleTo reports whether the message should be shown to the given user
// under the per-side deletion flags. The sender side is controlled by
// deleted_from_sender, everyone else by deleted_from_receiver.
func (m *Message) VisibleTo(userID int64) bool {
	if m.UserID == userID {
		return !m.DeletedFromSender
	}
	return !m.DeletedFromReceiver
}
