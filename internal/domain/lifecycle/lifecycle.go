// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds individual lifecycle steps (pings, shutdowns, rehydration).
const DefaultTimeout = 15 * time.Second
