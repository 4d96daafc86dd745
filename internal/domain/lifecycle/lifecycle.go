// Package lifecycle holds process start/stop conventions shared by infra components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful-shutdown steps.
const DefaultTimeout = 10 * time.Second
