package live

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	Message "github.com/GolfPlayed/talk/internal/message/model"
)

type capturedTrigger struct {
	channels []string
	event    string
	payload  any
}

type fakeBroadcaster struct {
	triggers []capturedTrigger
	err      error
}

func (f *fakeBroadcaster) Trigger(_ context.Context, channels []string, event string, payload any) error {
	f.triggers = append(f.triggers, capturedTrigger{channels: channels, event: event, payload: payload})
	return f.err
}

func newTestWorker(t *testing.T, b Broadcaster) *Worker {
	w, err := NewWorker("redis://localhost:6379", "talk", b, nil, 1)
	require.NoError(t, err)
	return w
}

func TestWorker_MessageSent(t *testing.T) {
	b := &fakeBroadcaster{}
	w := newTestWorker(t, b)

	payload, err := json.Marshal(MessageSentPayload{Message: &Message.Message{
		ID: 21, ConversationID: 7, UserID: 2, Message: "hello",
	}})
	require.NoError(t, err)

	err = w.handleMessageSent(context.Background(), asynq.NewTask(TaskMessageSent, payload))
	require.NoError(t, err)

	require.Len(t, b.triggers, 1)
	assert.Equal(t, []string{"talk-conversation-7"}, b.triggers[0].channels)
	assert.Equal(t, EventMessageSent, b.triggers[0].event)
}

func TestWorker_ConversationCreated(t *testing.T) {
	b := &fakeBroadcaster{}
	w := newTestWorker(t, b)

	payload, err := json.Marshal(ConversationCreatedPayload{
		Conversation:   &Conversation.Conversation{ID: 7, UserID: 1},
		ParticipantIDs: []int64{2, 3},
	})
	require.NoError(t, err)

	err = w.handleConversationCreated(context.Background(), asynq.NewTask(TaskConversationCreated, payload))
	require.NoError(t, err)

	require.Len(t, b.triggers, 1)
	assert.Equal(t, []string{
		"talk-conversation-7",
		"talk-inbox-2",
		"talk-inbox-3",
		"talk-inbox-1",
	}, b.triggers[0].channels)
	assert.Equal(t, EventConversationCreated, b.triggers[0].event)
}

func TestWorker_BadPayloadIsSwallowed(t *testing.T) {
	b := &fakeBroadcaster{}
	w := newTestWorker(t, b)

	err := w.handleMessageSent(context.Background(), asynq.NewTask(TaskMessageSent, []byte("{")))
	assert.NoError(t, err)
	assert.Empty(t, b.triggers)
}

func TestWorker_BroadcastFailureIsSwallowed(t *testing.T) {
	b := &fakeBroadcaster{err: assert.AnError}
	w := newTestWorker(t, b)

	payload, err := json.Marshal(MessageSentPayload{Message: &Message.Message{ID: 1, ConversationID: 7}})
	require.NoError(t, err)

	err = w.handleMessageSent(context.Background(), asynq.NewTask(TaskMessageSent, payload))
	assert.NoError(t, err)
}
