package domain

import "time"

// Listing represents a ui listing in the marketplace catalog. Only the media
// fields are owned by this pipeline; the rest of the row belongs to the CRUD
// handlers.
type Listing struct {
	ID            string
	Name          string
	BannerURL     string
	AssetRemoteID string
	ShowcaseURLs  []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
