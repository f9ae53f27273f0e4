package service

import (
	"context"
)

// Catalog event actions.
const (
	CatalogActionCreated = "created"
	CatalogActionUpdated = "updated"
	CatalogActionDeleted = "deleted"
)

// CatalogEvent represents a change to the public catalog, published for
// downstream consumers such as search indexers and cache invalidators.
type CatalogEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	ResourceType string `json:"resource_type"`        // product, category or carousel_image
	ResourceID   string `json:"resource_id"`
	Action       string `json:"action"`
	ActorID      string `json:"actor_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event for async processing
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
