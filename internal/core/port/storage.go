package port

import (
	"context"
	"io"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// ObjectStorage is an interface to define remote object store interactions
type ObjectStorage interface {
	Upload(ctx context.Context, localPath, displayName, mimeType string, isPublic bool) (*domain.UploadResult, error)
	Delete(ctx context.Context, remoteID string) error
	FetchStream(ctx context.Context, remoteID string) (io.ReadCloser, error)
}
