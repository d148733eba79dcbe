package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/infrastructure/persistence/models"
)

// upsertColumns are overwritten when a report is regenerated for an existing ticker
var upsertColumns = []string{"prompt", "response", "sector", "market_cap", "recommendation", "created_at"}

// GormAnalysisRepository implements analysis.Repository using GORM
type GormAnalysisRepository struct {
	db *gorm.DB
}

// NewGormAnalysisRepository creates a new GormAnalysisRepository
func NewGormAnalysisRepository(db *gorm.DB) *GormAnalysisRepository {
	return &GormAnalysisRepository{db: db}
}

// FindByTicker finds the analysis stored for ticker
func (r *GormAnalysisRepository) FindByTicker(ctx context.Context, ticker string) (*analysis.Analysis, error) {
	var model models.AnalysisModel
	if err := r.db.WithContext(ctx).
		Where("ticker = ?", strings.ToUpper(ticker)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert inserts the analysis or replaces the row already stored for its ticker
func (r *GormAnalysisRepository) Upsert(ctx context.Context, a *analysis.Analysis) error {
	if a == nil {
		return shared.ErrInvalidInput.WithMessage("analysis is required")
	}
	model := models.AnalysisModelFromDomain(a)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticker"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(model).Error
}

// Search returns one page of analyses matching filter, newest first.
// The filter is normalized and validated before any query runs.
func (r *GormAnalysisRepository) Search(ctx context.Context, filter analysis.ScreenerFilter) (shared.Paginated[analysis.Analysis], error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return shared.Paginated[analysis.Analysis]{}, err
	}

	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.AnalysisModel{}), filter).
		Count(&total).Error; err != nil {
		return shared.Paginated[analysis.Analysis]{}, err
	}

	items := make([]analysis.Analysis, 0, filter.Limit)
	if total == 0 {
		return shared.NewPaginated(items, total, filter.Page, filter.Limit), nil
	}

	var rows []models.AnalysisModel
	offset := shared.NewPagination(filter.Page, filter.Limit, total).Offset()
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.AnalysisModel{}), filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		return shared.Paginated[analysis.Analysis]{}, err
	}

	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}
	return shared.NewPaginated(items, total, filter.Page, filter.Limit), nil
}

// applyFilter adds one parameterized condition per populated filter field
func (r *GormAnalysisRepository) applyFilter(query *gorm.DB, filter analysis.ScreenerFilter) *gorm.DB {
	if filter.Symbol != "" {
		query = query.Where(`UPPER(ticker) LIKE ? ESCAPE '\'`, "%"+escapeLikePattern(filter.Symbol)+"%")
	}
	if filter.Sector != "" {
		query = query.Where("sector = ?", filter.Sector)
	}
	if filter.Recommendation != "" {
		query = query.Where("recommendation = ?", filter.Recommendation)
	}
	if filter.MarketCapMin != nil {
		query = query.Where("market_cap >= ?", *filter.MarketCapMin)
	}
	if filter.MarketCapMax != nil {
		query = query.Where("market_cap <= ?", *filter.MarketCapMax)
	}
	return query
}

// escapeLikePattern escapes special characters in LIKE patterns
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

var _ analysis.Repository = (*GormAnalysisRepository)(nil)
