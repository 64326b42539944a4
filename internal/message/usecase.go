package message

import (
	"context"
)

type MessageUsecase interface {
	// Window resolves the visible message page for a user, honoring their
	// clear watermark. An unknown conversation yields an empty window, not
	// an error.
	Window(ctx context.Context, conversationID, userID int64, offset, limit int) (*Window, error)

	// WindowAll pages a conversation ignoring watermarks and per-side
	// deletion. An unknown conversation is a NotFound error here.
	WindowAll(ctx context.Context, conversationID int64, offset, limit int) (*Window, error)

	// Send persists a message and fans out a message-sent notification.
	Send(ctx context.Context, cmd SendCommand) (*MessageDTO, error)

	// MarkSeen records a read receipt. Only a recipient can mark a message
	// seen, never its sender.
	MarkSeen(ctx context.Context, messageID, userID int64) error

	// DeleteForUser soft-deletes one message for the calling side only.
	DeleteForUser(ctx context.Context, messageID, userID int64) error
}
