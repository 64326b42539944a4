package live

import (
	"context"
	"encoding/json"
	"time"

	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	Message "github.com/GolfPlayed/talk/internal/message/model"
	"github.com/GolfPlayed/talk/pkg/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Queue task names. The payloads are plain JSON so pending jobs survive a
// process restart in redis.
const (
	TaskMessageSent         = "live:message-sent"
	TaskConversationCreated = "live:conversation-created"

	queueName      = "live"
	enqueueTimeout = 2 * time.Second
)

type MessageSentPayload struct {
	Message *Message.Message `json:"message"`
}

type ConversationCreatedPayload struct {
	Conversation   *Conversation.Conversation `json:"conversation"`
	ParticipantIDs []int64                    `json:"participant_ids"`
}

// Dispatcher queues realtime fan-out jobs. Both methods are fire-and-forget:
// they never block the write path beyond a bounded enqueue and never surface
// failures to the caller.
type Dispatcher interface {
	MessageSent(ctx context.Context, msg *Message.Message)
	ConversationCreated(ctx context.Context, conv *Conversation.Conversation, participantIDs []int64)
}

type AsynqDispatcher struct {
	client *asynq.Client
	logger *logger.Logger
}

func NewAsynqDispatcher(client *asynq.Client, logger *logger.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{client: client, logger: logger}
}

var _ Dispatcher = (*AsynqDispatcher)(nil)

func (d *AsynqDispatcher) MessageSent(ctx context.Context, msg *Message.Message) {
	payload, err := json.Marshal(MessageSentPayload{Message: msg})
	if err != nil {
		d.logger.Error("live: marshal message-sent payload", "err", err)
		return
	}
	d.enqueue(ctx, TaskMessageSent, payload)
}

func (d *AsynqDispatcher) ConversationCreated(ctx context.Context, conv *Conversation.Conversation, participantIDs []int64) {
	payload, err := json.Marshal(ConversationCreatedPayload{
		Conversation:   conv,
		ParticipantIDs: participantIDs,
	})
	if err != nil {
		d.logger.Error("live: marshal conversation-created payload", "err", err)
		return
	}
	d.enqueue(ctx, TaskConversationCreated, payload)
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, taskType string, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	traceID := uuid.NewString()
	_, err := d.client.EnqueueContext(ctx, asynq.NewTask(taskType, payload),
		asynq.Queue(queueName),
		asynq.TaskID(traceID),
		asynq.MaxRetry(0),
	)
	if err != nil {
		// A lost notification is acceptable; a failed send is not.
		d.logger.Error("live: enqueue failed", "task", taskType, "trace_id", traceID, "err", err)
		return
	}
	d.logger.Debug("live: enqueued", "task", taskType, "trace_id", traceID)
}
