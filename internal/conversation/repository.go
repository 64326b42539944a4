package conversation

import (
	"context"

	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
)

// ThreadCriteria is the typed filter consumed by ListCandidates. All id sets
// are resolved by the caller; the repository only composes the query.
type ThreadCriteria struct {
	UserID int64

	// Conversations the user removed outright; always excluded.
	RemovedIDs []int64

	// Conversations the user belongs to as an active participant.
	ParticipantIDs []int64

	Order  Order
	Offset int
	Limit  int
}

type ConversationRepository interface {
	Create(ctx context.Context, conv *Conversation.Conversation) error
	GetByID(ctx context.Context, id int64) (*Conversation.Conversation, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindBetween returns the id of the direct conversation containing
	// exactly the given pair, in either order, or ErrConversationNotFound.
	FindBetween(ctx context.Context, userA, userB int64) (int64, error)

	// IsUserInConversation checks the direct peers (user_one/user_two).
	IsUserInConversation(ctx context.Context, conversationID, userID int64) (bool, error)

	AddParticipants(ctx context.Context, conversationID int64, userIDs []int64) error

	// IsActiveParticipant checks group membership rows, not the direct
	// peers.
	IsActiveParticipant(ctx context.Context, conversationID, userID int64) (bool, error)
	Participants(ctx context.Context, conversationID int64, activeOnly bool) ([]*Conversation.ConversationParticipant, error)
	DeactivateParticipant(ctx context.Context, conversationID, userID int64) error

	// FullyRemovedIDs lists conversations the user tombstoned with
	// messages_removed=false (thread removed outright).
	FullyRemovedIDs(ctx context.Context, userID int64) ([]int64, error)

	// ParticipantConversationIDs lists conversations where the user is an
	// active participant, excluding the given set.
	ParticipantConversationIDs(ctx context.Context, userID int64, excluding []int64) ([]int64, error)

	// ListCandidates returns active conversations the user created or
	// participates in, ordered by last activity.
	ListCandidates(ctx context.Context, c ThreadCriteria) ([]*Conversation.Conversation, error)

	// ListDirectByUser returns direct conversations with the user on either
	// side, paged, newest first. Used by the unfiltered all-threads listing.
	ListDirectByUser(ctx context.Context, userID int64, offset, limit int) ([]*Conversation.Conversation, error)

	UpsertRemove(ctx context.Context, remove *Conversation.ConversationRemove) error
	GetRemove(ctx context.Context, conversationID, userID int64) (*Conversation.ConversationRemove, error)

	// Touch bumps updated_at so the thread resorts by last activity.
	Touch(ctx context.Context, conversationID int64) error
}
