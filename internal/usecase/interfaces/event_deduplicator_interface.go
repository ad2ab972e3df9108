package interfaces

import "context"

// IEventDeduplicator remembers processed gateway event ids.
type IEventDeduplicator interface {
	// MarkProcessed returns true the first time an event id is seen.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}
