package input

import (
	"context"

	"vr-training-backend/internal/domain"
)

// ChatService interface - Input port (use case)
// Text-only conversational turns and history retrieval.
type ChatService interface {
	Chat(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error)
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)
}
