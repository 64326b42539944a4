package live

import (
	"context"
)

// Broadcaster is the realtime transport port. Implementations publish one
// event to a set of channels; delivery is best-effort and failures are never
// surfaced to the request that triggered them.
type Broadcaster interface {
	Trigger(ctx context.Context, channels []string, event string, payload any) error
}
