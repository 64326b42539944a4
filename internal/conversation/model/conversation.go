package models

import (
	"time"

	"github.com/uptrace/bun"

	User "github.com/GolfPlayed/talk/internal/user/model"
)

const (
	StatusInactive = 0
	StatusActive   = 1
)

type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:cv"`

	ID int64 `bun:",pk,autoincrement"`

	// Creator.
	UserID  int64      `bun:",notnull"`
	Creator *User.User `bun:"rel:belongs-to,join:user_id=id"`

	// Direct conversations name both peers inline; group membership lives in
	// conversation_participants.
	UserOne int64 `bun:",nullzero"`
	UserTwo int64 `bun:",nullzero"`

	Group bool   `bun:"group,notnull,default:false"`
	Name  string `bun:",nullzero"`
	Image string `bun:",nullzero"`

	Status int `bun:",notnull,default:1"`

	Participants []*ConversationParticipant `bun:"rel:has-many,join:id=conversation_id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Uniqueness of a direct conversation over the unordered peer pair is
	// enforced by lookup plus a migration-side index:
	// CREATE UNIQUE INDEX idx_direct_pair ON conversations
	//   (least(user_one, user_two), greatest(user_one, user_two))
	//   WHERE "group" = false;
}
