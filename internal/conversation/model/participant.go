package models

import (
	"time"

	"github.com/uptrace/bun"

	User "github.com/GolfPlayed/talk/internal/user/model"
)

// ConversationParticipant records group membership. Rows are never deleted;
// leaving a conversation flips Active to false so history keeps resolving.
type ConversationParticipant struct {
	bun.BaseModel `bun:"table:conversation_participants,alias:cp"`

	ID             int64 `bun:",pk,autoincrement"`
	ConversationID int64 `bun:",notnull"`

	UserID int64      `bun:",notnull"`
	User   *User.User `bun:"rel:belongs-to,join:user_id=id"`

	Active bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
