// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// components (HTTP server, database pool).
const DefaultTimeout = 30 * time.Second
