package analysis

import (
	"context"

	"github.com/stockie/backend/internal/domain/shared"
)

// Repository defines the interface for analysis persistence
type Repository interface {
	// FindByTicker returns the record for ticker or shared.ErrNotFound
	FindByTicker(ctx context.Context, ticker string) (*Analysis, error)

	// Upsert inserts the record or replaces the existing row for its ticker
	Upsert(ctx context.Context, a *Analysis) error

	// Search returns one page of records matching filter, newest first
	Search(ctx context.Context, filter ScreenerFilter) (shared.Paginated[Analysis], error)
}
