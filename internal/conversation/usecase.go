package conversation

import (
	"context"

	"github.com/GolfPlayed/talk/internal/user"
)

type ConversationUsecase interface {
	// Threads reconstructs the visible thread list for a user: removed and
	// inactive conversations excluded, unread counts and latest message
	// honoring per-side deletion flags.
	Threads(ctx context.Context, userID int64, q ThreadQuery) ([]ThreadSummary, error)

	// ThreadsAll lists the latest message of every direct conversation the
	// user is on either side of, ignoring soft-delete state.
	ThreadsAll(ctx context.Context, userID int64, offset, limit int) ([]ThreadMessage, error)

	// Create opens a conversation. For a direct conversation an existing one
	// between the pair is returned instead of creating a duplicate. Fans out
	// a conversation-created notification on actual creation.
	Create(ctx context.Context, cmd CreateCommand) (*ConversationDTO, error)

	// ExistsAmongTwoUsers resolves the direct conversation between two users
	// regardless of argument order; 0 when none exists.
	ExistsAmongTwoUsers(ctx context.Context, userA, userB int64) (int64, error)

	ExistsByID(ctx context.Context, conversationID int64) (bool, error)
	IsUserInConversation(ctx context.Context, conversationID, userID int64) (bool, error)

	Participants(ctx context.Context, conversationID int64) ([]user.Summary, error)

	// Leave deactivates the user's group membership; history is preserved.
	Leave(ctx context.Context, conversationID, userID int64) error

	// Clear tombstones the conversation for the user. removeMessages=false
	// removes the whole thread from their listing; removeMessages=true hides
	// history up to the current newest message and keeps the thread.
	Clear(ctx context.Context, conversationID, userID int64, removeMessages bool) error
}
