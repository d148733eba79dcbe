package handler

import (
	analysisapp "github.com/stockie/backend/internal/application/analysis"
	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/interfaces/http/dto"
)

// Response bodies below exist for the OpenAPI document only; handlers write
// dto.Response.

// ErrorResponse is the body of every failed request
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// EnvelopeResponse wraps a market data envelope. results varies per route.
type EnvelopeResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    market.Envelope[any] `json:"data"`
}

// AnalysisPageResponse is one page of the screener listing
type AnalysisPageResponse struct {
	Success bool                                          `json:"success" example:"true"`
	Data    shared.Paginated[analysisapp.AnalysisSummary] `json:"data"`
}

// ReportResponse carries a stored or freshly generated analyst report
type ReportResponse struct {
	Success bool                       `json:"success" example:"true"`
	Data    analysisapp.ReportResponse `json:"data"`
}

// StringListResponse is used by the sector, tag and slug listings
type StringListResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    []string `json:"data"`
}

// BlogListResponse lists post summaries, newest first
type BlogListResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    []blog.Meta `json:"data"`
}

// BlogPostResponse carries one post with its raw body
type BlogPostResponse struct {
	Success bool      `json:"success" example:"true"`
	Data    blog.Post `json:"data"`
}

// SystemInfoResponse wraps SystemInfo
type SystemInfoResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    SystemInfo `json:"data"`
}
