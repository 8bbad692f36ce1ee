package memory

import (
	"context"
	"sync"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MemoryConversationStore implements ConversationStore
var _ output.ConversationStore = (*MemoryConversationStore)(nil)

// MemoryConversationStore struct - Output adapter for in-memory conversation
// storage, used in development when no database backend is configured.
// Turns are kept per session in append order, which matches timestamp order
// because timestamps are assigned at generation time.
type MemoryConversationStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.Turn
}

// NewMemoryConversationStore creates a new in-memory conversation store.
func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		turns: make(map[string][]domain.Turn),
	}
}

// FetchTurns returns the session's turns in chronological order.
// A session with no turns yields an empty slice.
func (m *MemoryConversationStore) FetchTurns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.turns[sessionID]
	history := make([]domain.Turn, len(stored))
	copy(history, stored)
	return history, nil
}

// SaveTurn appends one turn to the session's history.
func (m *MemoryConversationStore) SaveTurn(ctx context.Context, turn domain.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns[turn.SessionID] = append(m.turns[turn.SessionID], turn)
	logrus.Infof("Conversation saved to memory for session %s", turn.SessionID)
	return nil
}
