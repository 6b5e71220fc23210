package interfaces

import "context"

// IActorDirectory resolves a free-form actor identity (email or username) to
// a display name. Resolution against a real directory is an external
// collaborator; implementations are expected to cache with a bounded TTL.
type IActorDirectory interface {
	DisplayName(ctx context.Context, actorID string) (string, error)
}
