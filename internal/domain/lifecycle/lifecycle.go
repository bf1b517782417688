// Package lifecycle holds shared shutdown constants for the process's
// explicit start/stop orchestration.
package lifecycle

import "time"

// DefaultTimeout is the grace period granted to in-flight work during
// shutdown before it is abandoned.
const DefaultTimeout = 10 * time.Second
