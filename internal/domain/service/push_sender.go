// Package service defines contracts for external collaborators the
// lifecycle core depends on but does not own.
package service

import (
	"context"
)

// PushSender defines the interface for push notification delivery.
// Delivery is best-effort: callers log failures and move on.
type PushSender interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
