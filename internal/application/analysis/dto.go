package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/shared"
)

// ReportResponse is a stored report as returned by the API
type ReportResponse struct {
	Ticker         string                  `json:"ticker"`
	Prompt         string                  `json:"prompt"`
	Response       string                  `json:"response"`
	Sector         analysis.Sector         `json:"sector"`
	MarketCap      decimal.Decimal         `json:"market_cap"`
	Recommendation analysis.Recommendation `json:"recommendation"`
	CreatedAt      time.Time               `json:"created_at"`
}

// AnalysisSummary is one screener row
type AnalysisSummary struct {
	Ticker         string                  `json:"ticker"`
	Sector         analysis.Sector         `json:"sector"`
	MarketCap      decimal.Decimal         `json:"market_cap"`
	Recommendation analysis.Recommendation `json:"recommendation"`
	CreatedAt      time.Time               `json:"created_at"`
}

// ToReportResponse converts a domain record to ReportResponse
func ToReportResponse(a *analysis.Analysis) *ReportResponse {
	if a == nil {
		return nil
	}
	return &ReportResponse{
		Ticker:         a.Ticker,
		Prompt:         a.Prompt,
		Response:       a.Response,
		Sector:         a.Sector,
		MarketCap:      a.MarketCap,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAnalysisSummary converts a domain record to AnalysisSummary
func ToAnalysisSummary(a analysis.Analysis) AnalysisSummary {
	return AnalysisSummary{
		Ticker:         a.Ticker,
		Sector:         a.Sector,
		MarketCap:      a.MarketCap,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
	}
}

// ScreenerQuery is the screener listing request, bound from the query string
type ScreenerQuery struct {
	Symbol         string `form:"symbol" binding:"omitempty,max=10"`
	Sector         string `form:"sector" binding:"omitempty,max=32"`
	Recommendation string `form:"recommendation" binding:"omitempty,oneof=strong_buy buy hold sell STRONG_BUY BUY HOLD SELL"`
	MarketCapMin   string `form:"marketCapMin"`
	MarketCapMax   string `form:"marketCapMax"`
	Page           *int   `form:"page" binding:"omitempty,min=1"`
	Limit          *int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Filter converts the query into a domain filter. Absent paging parameters
// take the defaults; explicit ones are passed through for validation.
func (q ScreenerQuery) Filter() (analysis.ScreenerFilter, error) {
	minCap, err := parseMarketCap("marketCapMin", q.MarketCapMin)
	if err != nil {
		return analysis.ScreenerFilter{}, err
	}
	maxCap, err := parseMarketCap("marketCapMax", q.MarketCapMax)
	if err != nil {
		return analysis.ScreenerFilter{}, err
	}
	page, limit := 1, analysis.DefaultPageSize
	if q.Page != nil {
		page = *q.Page
	}
	if q.Limit != nil {
		limit = *q.Limit
	}
	return analysis.ScreenerFilter{
		Symbol:         q.Symbol,
		Sector:         analysis.Sector(q.Sector),
		Recommendation: analysis.Recommendation(q.Recommendation),
		MarketCapMin:   minCap,
		MarketCapMax:   maxCap,
		Page:           page,
		Limit:          limit,
	}, nil
}

func parseMarketCap(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, shared.ErrInvalidInput.WithMessage(field + " must be a number")
	}
	return &d, nil
}

// GenerateReportRequest is the body of a report generation request
type GenerateReportRequest struct {
	Symbol string `json:"symbol" binding:"required,ticker"`
}
