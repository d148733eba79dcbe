package analysis

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockie/backend/internal/domain/shared"
)

// Screener paging bounds
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ScreenerFilter narrows the analysis listing. Zero values mean "no filter".
// Market cap bounds are in absolute currency units.
type ScreenerFilter struct {
	Symbol         string
	Sector         Sector
	Recommendation Recommendation
	MarketCapMin   *decimal.Decimal
	MarketCapMax   *decimal.Decimal
	Page           int
	Limit          int
}

// Normalize trims and upper-cases text filters and fills paging defaults.
// Zero paging here means unset; request binding rejects an explicit zero.
func (f ScreenerFilter) Normalize() ScreenerFilter {
	f.Symbol = strings.ToUpper(strings.TrimSpace(f.Symbol))
	f.Sector = Sector(strings.ToUpper(strings.TrimSpace(string(f.Sector))))
	f.Recommendation = Recommendation(strings.ToLower(strings.TrimSpace(string(f.Recommendation))))
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = DefaultPageSize
	}
	return f
}

// Validate checks the filter after normalization
func (f ScreenerFilter) Validate() error {
	if f.Page < 1 {
		return shared.ErrInvalidInput.WithMessage("page must be at least 1")
	}
	if f.Limit < 1 || f.Limit > MaxPageSize {
		return shared.ErrInvalidInput.WithMessage("limit must be between 1 and 100")
	}
	if len(f.Symbol) > 10 {
		return shared.ErrInvalidInput.WithMessage("symbol filter cannot exceed 10 characters")
	}
	if f.Sector != "" && !f.Sector.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown sector: " + string(f.Sector))
	}
	if f.Recommendation != "" && !f.Recommendation.IsValid() {
		return shared.ErrInvalidInput.WithMessage("recommendation must be one of strong_buy, buy, hold, sell")
	}
	if f.MarketCapMin != nil && f.MarketCapMin.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("marketCapMin cannot be negative")
	}
	if f.MarketCapMax != nil && f.MarketCapMax.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("marketCapMax cannot be negative")
	}
	if f.MarketCapMin != nil && f.MarketCapMax != nil && f.MarketCapMin.GreaterThan(*f.MarketCapMax) {
		return shared.ErrInvalidInput.WithMessage("marketCapMin cannot exceed marketCapMax")
	}
	return nil
}
