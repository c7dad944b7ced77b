// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// after all lifecycle hooks have completed.
type Delivery interface {
	// Serve blocks until the surface stops accepting work.
	Serve(ctx context.Context) error
}
