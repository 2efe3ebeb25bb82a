// Package lifecycle holds shared constants for application lifecycle control.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and other resources.
const DefaultTimeout = 10 * time.Second
