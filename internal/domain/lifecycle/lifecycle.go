// Package lifecycle holds constants shared by components that participate in
// application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout is the grace period allowed for a component to shut down.
const DefaultTimeout = 10 * time.Second
