package analysis

import (
	"context"

	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/shared"
)

// ScreenerService lists previously analyzed stocks
type ScreenerService struct {
	repo analysis.Repository
}

// NewScreenerService creates a new ScreenerService
func NewScreenerService(repo analysis.Repository) *ScreenerService {
	return &ScreenerService{repo: repo}
}

// List returns one page of analyses matching filter, newest first
func (s *ScreenerService) List(ctx context.Context, filter analysis.ScreenerFilter) (shared.Paginated[AnalysisSummary], error) {
	page, err := s.repo.Search(ctx, filter)
	if err != nil {
		return shared.Paginated[AnalysisSummary]{}, err
	}

	items := make([]AnalysisSummary, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, ToAnalysisSummary(a))
	}
	return shared.Paginated[AnalysisSummary]{Items: items, Pagination: page.Pagination}, nil
}

// Sectors returns the sector codes accepted by the screener
func (s *ScreenerService) Sectors() []analysis.Sector {
	out := make([]analysis.Sector, len(analysis.Sectors))
	copy(out, analysis.Sectors)
	return out
}
