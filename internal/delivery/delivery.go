// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a runnable transport (HTTP server, worker, etc.) managed by
// the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
