package live

import "fmt"

// Event names are part of the wire contract with external subscribers.
const (
	EventMessageSent         = "message-sent"
	EventConversationCreated = "conversation-created"
)

// ConversationChannel names the per-conversation channel. Subscribers build
// the same name independently, so construction must stay deterministic.
func ConversationChannel(appName string, conversationID int64) string {
	return fmt.Sprintf("%s-conversation-%d", appName, conversationID)
}

// InboxChannel names a user's personal inbox channel.
func InboxChannel(appName string, userID int64) string {
	return fmt.Sprintf("%s-inbox-%d", appName, userID)
}

// ConversationCreatedChannels is the full fan-out set for a new conversation:
// the conversation channel, one inbox per participant, and the creator's own
// inbox, deduplicated in that order.
func ConversationCreatedChannels(appName string, conversationID, creatorID int64, participantIDs []int64) []string {
	channels := make([]string, 0, len(participantIDs)+2)
	channels = append(channels, ConversationChannel(appName, conversationID))

	seen := make(map[string]struct{}, len(participantIDs)+1)
	add := func(uid int64) {
		ch := InboxChannel(appName, uid)
		if _, dup := seen[ch]; dup {
			return
		}
		seen[ch] = struct{}{}
		channels = append(channels, ch)
	}
	for _, uid := range participantIDs {
		add(uid)
	}
	add(creatorID)
	return channels
}
