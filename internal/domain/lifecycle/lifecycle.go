// Package lifecycle holds process-wide start and stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of each component.
const DefaultTimeout = 10 * time.Second
