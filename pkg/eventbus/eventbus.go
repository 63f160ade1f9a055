// Package eventbus provides in-process publish/subscribe for domain
// events.
package eventbus

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/domain"
)

// Bus defines the contract for publishing and subscribing to domain
// events. Handlers for an event type run synchronously, in subscription
// order, on the publishing goroutine.
type Bus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
