// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work performed in
// lifecycle hooks (DB pings, server shutdown).
const DefaultTimeout = 10 * time.Second
