package output

import (
	"context"

	"vr-training-backend/internal/domain"
)

// StorageSigner interface - Output port
// Issues time-limited upload/download URLs against the object store.
type StorageSigner interface {
	SignedUploadURL(ctx context.Context, request domain.SignedURLRequest) (*domain.SignedUploadResult, error)
	SignedDownloadURL(ctx context.Context, request domain.SignedURLRequest) (string, error)
}
