package conversation

import (
	"github.com/GolfPlayed/talk/internal/user"

	Message "github.com/GolfPlayed/talk/internal/message/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type ThreadKind string

const (
	ThreadOneToOne ThreadKind = "one_to_one"
	ThreadGroup    ThreadKind = "group"
)

// ThreadQuery selects and pages the thread list.
type ThreadQuery struct {
	Order  Order
	Offset int
	Limit  int
}

// ThreadSummary is one conversation as seen by the querying user. Exactly one
// of OneToOne / Group is set, according to Kind.
type ThreadSummary struct {
	ConversationID int64            `json:"conversation_id"`
	Unread         int              `json:"unread"`
	LastMessage    *Message.Message `json:"thread"`
	Creator        user.Summary     `json:"creator"`
	Kind           ThreadKind       `json:"kind"`

	OneToOne *OneToOneThread `json:"one_to_one,omitempty"`
	Group    *GroupThread    `json:"group,omitempty"`
}

type OneToOneThread struct {
	OtherUser user.Summary `json:"participant"`
}

type GroupThread struct {
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Participants []user.Summary `json:"participants"`
}

// ThreadMessage is one entry of the unfiltered all-threads listing: the
// latest message of a direct conversation together with the peer it was
// exchanged with.
type ThreadMessage struct {
	Message *Message.Message `json:"message"`
	With    user.Summary     `json:"user"`
}

// Input commands

type CreateCommand struct {
	CreatorID int64

	// Direct conversation peer; ignored when Group is set.
	PeerID int64

	Group          bool
	Name           string
	Image          string
	ParticipantIDs []int64
}

type ConversationDTO struct {
	ID           int64   `json:"id"`
	CreatorID    int64   `json:"user_id"`
	Group        bool    `json:"group"`
	Name         string  `json:"name,omitempty"`
	Image        string  `json:"image,omitempty"`
	Participants []int64 `json:"participants"`
}
