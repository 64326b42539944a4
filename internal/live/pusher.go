package live

import (
	"context"

	"github.com/GolfPlayed/talk/config"

	pusher "github.com/pusher/pusher-http-go/v5"
)

// PusherBroadcaster publishes through the hosted Pusher Channels API, the
// transport the mobile and web clients subscribe to.
type PusherBroadcaster struct {
	client *pusher.Client
}

func NewPusherBroadcaster(cfg config.PusherConfig) *PusherBroadcaster {
	return &PusherBroadcaster{
		client: &pusher.Client{
			AppID:   cfg.AppID,
			Key:     cfg.Key,
			Secret:  cfg.Secret,
			Cluster: cfg.Cluster,
		},
	}
}

var _ Broadcaster = (*PusherBroadcaster)(nil)

func (b *PusherBroadcaster) Trigger(ctx context.Context, channels []string, event string, payload any) error {
	return b.client.TriggerMulti(channels, event, payload)
}
