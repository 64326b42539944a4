package live

import (
	"context"
	"encoding/json"

	"github.com/GolfPlayed/talk/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// Worker consumes the live queue and publishes through the broadcaster.
// Handler errors are logged and swallowed: with single-attempt delivery the
// worst outcome is a missing notification, never a blocked queue.
type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	broadcaster Broadcaster
	appName     string
	logger      *logger.Logger
}

func NewWorker(redisURL, appName string, broadcaster Broadcaster, lg *logger.Logger, concurrency int) (*Worker, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "live: parse redis url")
	}
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queueName: 1},
	})

	w := &Worker{
		server:      srv,
		mux:         asynq.NewServeMux(),
		broadcaster: broadcaster,
		appName:     appName,
		logger:      lg,
	}
	w.mux.HandleFunc(TaskMessageSent, w.handleMessageSent)
	w.mux.HandleFunc(TaskConversationCreated, w.handleConversationCreated)
	return w, nil
}

// Run starts the worker and blocks until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return errors.Wrap(err, "live: start worker")
	}
	<-ctx.Done()
	w.server.Shutdown()
	return nil
}

func (w *Worker) handleMessageSent(ctx context.Context, t *asynq.Task) error {
	var p MessageSentPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.logger.Error("live: bad message-sent payload", "err", err)
		return nil
	}
	if p.Message == nil {
		w.logger.Error("live: message-sent payload without message")
		return nil
	}

	channels := []string{ConversationChannel(w.appName, p.Message.ConversationID)}
	if err := w.broadcaster.Trigger(ctx, channels, EventMessageSent, p.Message); err != nil {
		w.logger.Error("live: broadcast message-sent failed",
			"conversation_id", p.Message.ConversationID, "err", err)
	}
	return nil
}

func (w *Worker) handleConversationCreated(ctx context.Context, t *asynq.Task) error {
	var p ConversationCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.logger.Error("live: bad conversation-created payload", "err", err)
		return nil
	}
	if p.Conversation == nil {
		w.logger.Error("live: conversation-created payload without conversation")
		return nil
	}

	channels := ConversationCreatedChannels(w.appName, p.Conversation.ID, p.Conversation.UserID, p.ParticipantIDs)
	if err := w.broadcaster.Trigger(ctx, channels, EventConversationCreated, p.Conversation); err != nil {
		w.logger.Error("live: broadcast conversation-created failed",
			"conversation_id", p.Conversation.ID, "err", err)
	}
	return nil
}
