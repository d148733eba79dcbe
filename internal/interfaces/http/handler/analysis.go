package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	analysisapp "github.com/stockie/backend/internal/application/analysis"
	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/shared"
)

// ReportService generates and reads AI analyst reports
type ReportService interface {
	Generate(ctx context.Context, symbol string) (*analysisapp.ReportResponse, error)
	Latest(ctx context.Context, symbol string) (*analysisapp.ReportResponse, error)
}

// ScreenerService lists analyzed stocks
type ScreenerService interface {
	List(ctx context.Context, filter analysis.ScreenerFilter) (shared.Paginated[analysisapp.AnalysisSummary], error)
	Sectors() []analysis.Sector
}

// AnalysisHandler handles the /analyses endpoints
type AnalysisHandler struct {
	BaseHandler
	reports  ReportService
	screener ScreenerService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(reports ReportService, screener ScreenerService) *AnalysisHandler {
	return &AnalysisHandler{reports: reports, screener: screener}
}

// List godoc
// @ID           listAnalyses
// @Summary      Screener listing
// @Description  Lists analyzed stocks newest first, filtered by symbol, sector, recommendation and market cap
// @Tags         analyses
// @Produce      json
// @Param        symbol         query string false "Ticker substring"
// @Param        sector         query string false "Sector code"
// @Param        recommendation query string false "Recommendation" Enums(strong_buy, buy, hold, sell)
// @Param        marketCapMin   query string false "Minimum market cap"
// @Param        marketCapMax   query string false "Maximum market cap"
// @Param        page           query int    false "Page number" minimum(1)
// @Param        limit          query int    false "Page size" minimum(1) maximum(100)
// @Success      200 {object} AnalysisPageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /analyses [get]
func (h *AnalysisHandler) List(c *gin.Context) {
	var q analysisapp.ScreenerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.screener.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Sectors godoc
// @ID           listSectors
// @Summary      Sector codes
// @Tags         analyses
// @Produce      json
// @Success      200 {object} StringListResponse
// @Router       /analyses/sectors [get]
func (h *AnalysisHandler) Sectors(c *gin.Context) {
	h.Success(c, h.screener.Sectors())
}

// Latest godoc
// @ID           getLatestAnalysis
// @Summary      Latest report
// @Description  Returns the stored report for a symbol regardless of age; data is null when none exists
// @Tags         analyses
// @Produce      json
// @Security     BearerAuth
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} ReportResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /analyses/{symbol} [get]
func (h *AnalysisHandler) Latest(c *gin.Context) {
	report, err := h.reports.Latest(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if report == nil {
		h.Success(c, nil)
		return
	}
	h.Success(c, report)
}

// Generate godoc
// @ID           generateAnalysis
// @Summary      Generate a report
// @Description  Returns the stored report when it is less than a week old, otherwise gathers market data, asks the model and stores the result
// @Tags         analyses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body analysisapp.GenerateReportRequest true "Symbol to analyze"
// @Success      200 {object} ReportResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /analyses [post]
func (h *AnalysisHandler) Generate(c *gin.Context) {
	var req analysisapp.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	report, err := h.reports.Generate(c.Request.Context(), req.Symbol)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
