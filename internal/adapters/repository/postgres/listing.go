package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

type sqlListingRepository struct {
	db SQLQuerier
}

// NewSqlListingRepository creates sqlListingRepository that implements port.ListingRepository
func NewSqlListingRepository(db SQLQuerier) port.ListingRepository {
	return &sqlListingRepository{
		db: db,
	}
}

// FindByID finds by id
func (s *sqlListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, name, banner_url, asset_remote_id, showcase_urls, created_at, updated_at
              FROM ui_listings
              WHERE id = $1`

	var listing domain.Listing
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&listing.ID,
		&listing.Name,
		&listing.BannerURL,
		&listing.AssetRemoteID,
		pq.Array(&listing.ShowcaseURLs),
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("error finding listing: %w", err)
	}

	return &listing, nil
}

// UpdateBannerURL overwrites the listing's banner url
func (s *sqlListingRepository) UpdateBannerURL(ctx context.Context, id string, url string) error {
	query := `UPDATE ui_listings
              SET banner_url = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, url, id)
}

// UpdateAssetFile overwrites the listing's remote asset file id
func (s *sqlListingRepository) UpdateAssetFile(ctx context.Context, id string, remoteID string) error {
	query := `UPDATE ui_listings
              SET asset_remote_id = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, remoteID, id)
}

// AppendShowcaseURL appends one url to the listing's showcase array in a
// single statement. The append happens inside the database so concurrent
// showcase uploads for the same listing never overwrite each other.
func (s *sqlListingRepository) AppendShowcaseURL(ctx context.Context, id string, url string) error {
	query := `UPDATE ui_listings
              SET showcase_urls = array_append(showcase_urls, $1), updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, url, id)
}

func (s *sqlListingRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: error updating listing: %w", domain.ErrPersistence, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: error checking rows affected: %w", domain.ErrPersistence, err)
	}

	if rowsAffected == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}
