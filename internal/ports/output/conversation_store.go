package output

import (
	"context"

	"vr-training-backend/internal/domain"
)

// ConversationStore interface - Output port
// Persists and retrieves per-session turns, ordered by timestamp ascending.
// Implementations must be safe for concurrent use; the pipeline issues
// fetches concurrently with transcription and saves from a background worker.
type ConversationStore interface {
	// FetchTurns returns the session's turns ordered by timestamp ascending.
	// A session with no turns yields an empty slice, never a not-found error.
	FetchTurns(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// SaveTurn appends one immutable turn. Eventual visibility to a later
	// FetchTurns is sufficient; no transactional coupling is required.
	SaveTurn(ctx context.Context, turn domain.Turn) error
}
