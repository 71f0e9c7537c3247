package service

import (
	"context"
)

// LifecycleEvent is a design lifecycle event published for external
// consumers (client sync, analytics).
type LifecycleEvent struct {
	Topic    string `json:"topic"`               // e.g. "design.status_changed", "order.created"
	DesignID string `json:"design_id"`
	OrderID  string `json:"order_id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing events to a
// message queue. Publishing is a best-effort side effect.
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async consumers.
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
