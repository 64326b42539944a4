package message

import (
	"context"

	Message "github.com/GolfPlayed/talk/internal/message/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *Message.Message) error
	GetByID(ctx context.Context, id int64) (*Message.Message, error)

	// ListWindow pages a conversation in insertion order (id ascending),
	// skipping everything at or below afterID. afterID=0 means no lower
	// bound.
	ListWindow(ctx context.Context, conversationID, afterID int64, offset, limit int) ([]*Message.Message, error)

	// Latest returns the newest message of the conversation regardless of
	// visibility, or nil when empty.
	Latest(ctx context.Context, conversationID int64) (*Message.Message, error)

	// LatestVisible returns the newest message the user can still see under
	// the per-side deletion flags, or nil when the conversation has none.
	LatestVisible(ctx context.Context, conversationID, userID int64) (*Message.Message, error)

	// CountUnread counts visible unseen messages authored by others.
	CountUnread(ctx context.Context, conversationID, userID int64) (int, error)

	// MaxID returns the newest message id of the conversation, 0 when empty.
	// Used as the watermark when a user clears history.
	MaxID(ctx context.Context, conversationID int64) (int64, error)

	MarkSeen(ctx context.Context, id int64) error

	// SetSideDeleted flips deleted_from_sender or deleted_from_receiver.
	SetSideDeleted(ctx context.Context, id int64, senderSide bool) error
}
