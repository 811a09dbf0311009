package messaging

import (
	"context"

	"github.com/feral-file/ff-collectibles/internal/domain"
)

// Publisher defines the interface for publishing collectible snapshots to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSnapshot publishes the collectibles of one wallet after a fetch cycle
	PublishSnapshot(ctx context.Context, snapshot domain.CollectibleSnapshot) error
	// Close closes the connection
	Close()
}
