package errors

var (
	// Domain errors — used in usecase/repository
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
	ErrUserNotFound         = NotFound("user not found")
	ErrNotParticipant       = Forbidden("user is not a participant of this conversation")
	ErrConversationClosed   = FailedPrecondition("conversation is not active")
	ErrSamePeer             = InvalidArg("a direct conversation needs two distinct users")
	ErrEmptyMessage         = InvalidArg("message body cannot be empty")
	ErrNoParticipants       = InvalidArg("a group conversation needs at least one participant")
	ErrConversationExists   = AlreadyExists("a direct conversation between these users already exists")
	ErrOwnMessageSeen       = FailedPrecondition("a sender cannot mark their own message as seen")
)
