// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface started by main after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
