package port

import (
	"context"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// ListingRepository is an interface to define ui listing repository interactions.
// AppendShowcaseURL must be atomic at the storage layer so concurrent showcase
// uploads for the same listing never lose each other's entries.
type ListingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	UpdateBannerURL(ctx context.Context, id string, url string) error
	UpdateAssetFile(ctx context.Context, id string, remoteID string) error
	AppendShowcaseURL(ctx context.Context, id string, url string) error
}

// PaymentRepository is an interface to define payment repository interactions
type PaymentRepository interface {
	UpdateStatusByCorrelationID(ctx context.Context, correlationID string, status domain.PaymentStatus) error
}
