package input

import (
	"context"

	"vr-training-backend/internal/domain"
)

// TurnService interface - Input port (use case)
// Processes one conversational turn: audio in, persona reply audio out.
type TurnService interface {
	ProcessTurn(ctx context.Context, request domain.TurnRequest) (*domain.TurnResult, error)
}
