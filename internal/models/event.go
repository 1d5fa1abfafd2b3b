package models

import "time"

// Product event types published to the message broker.
const (
	EventProductCreated             = "product.created"
	EventProductUpdated             = "product.updated"
	EventProductAvailabilityChanged = "product.availability_changed"
	EventProductDeleted             = "product.deleted"
)

// ProductEvent describes a change applied to a product.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  int       `json:"product_id"`
	Product    *Product  `json:"product,omitempty"` // Nil for deletions
	OccurredAt time.Time `json:"occurred_at"`
}
