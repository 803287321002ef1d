// internal/domain/notification/repository.go
package notification

import "context"

// Repository is a write-only journal of notification attempts. Nothing read back from
// it influences the poll loop.
type Repository interface {
	CreateDelivery(ctx context.Context, d *Delivery) error
}
