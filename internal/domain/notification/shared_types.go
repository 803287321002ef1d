// internal/domain/notification/shared_types.go
package notification

// DeliveryStatus is the outcome of a single attempt to send a chat message.
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "SENT"
	DeliveryFailed DeliveryStatus = "FAILED"
)
