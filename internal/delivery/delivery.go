// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a transport that serves the application until its context is
// cancelled or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
