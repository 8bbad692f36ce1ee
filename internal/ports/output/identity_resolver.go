package output

import (
	"context"

	"vr-training-backend/internal/domain"
)

// IdentityResolver interface - Output port
// Resolves a bearer credential to a user identity, or ErrUnauthorized.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, token string) (*domain.Identity, error)
}
