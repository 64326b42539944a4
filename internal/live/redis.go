package live

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes events over redis pub/sub, for deployments that
// front their own websocket tier instead of the hosted transport. Channel and
// event names stay identical to the Pusher wiring.
type RedisBroadcaster struct {
	client *redis.Client
}

// envelope is the wire frame on a redis channel.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func NewRedisBroadcaster(url string) (*RedisBroadcaster, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "live: parse redis url")
	}
	return &RedisBroadcaster{client: redis.NewClient(opt)}, nil
}

var _ Broadcaster = (*RedisBroadcaster)(nil)

func (b *RedisBroadcaster) Trigger(ctx context.Context, channels []string, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "live: marshal payload")
	}
	frame, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		return errors.Wrap(err, "live: marshal envelope")
	}

	for _, ch := range channels {
		if err := b.client.Publish(ctx, ch, frame).Err(); err != nil {
			return errors.Wrapf(err, "live: publish to %s", ch)
		}
	}
	return nil
}

func (b *RedisBroadcaster) Close() error {
	return b.client.Close()
}
