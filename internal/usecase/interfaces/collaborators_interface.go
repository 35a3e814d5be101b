package interfaces

import (
	"context"

	"blind_negotiation/internal/domain/entities"
)

// IRealtimePublisher relays negotiation updates to subscribers of one
// negotiation id. Delivery is best effort; subscribers recover through a read.
type IRealtimePublisher interface {
	Publish(ctx context.Context, negotiationID string, update entities.NegotiationUpdate) error
}

// IUserDirectory is the read-only user profile lookup. A missing user is a
// nil profile with a nil error.
type IUserDirectory interface {
	GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
}

// ICatalog is the read-only lead/product lookup used to pre-fill quotes.
// A missing entity is a nil snapshot with a nil error.
type ICatalog interface {
	GetEntitySnapshot(ctx context.Context, entityID string, entityType entities.EntityType) (*entities.EntitySnapshot, error)
}
