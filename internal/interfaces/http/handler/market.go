package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/stockie/backend/internal/domain/market"
)

// MarketService is the market data surface used by MarketHandler.
// Implemented by market.Service in the application layer.
type MarketService interface {
	EquityQuote(ctx context.Context, symbol string) (market.Envelope[[]market.EquityQuote], error)
	EquitySearch(ctx context.Context, query string) (market.Envelope[[]market.EquitySearchResult], error)
	EquityScreener(ctx context.Context) (market.Envelope[[]market.EquityScreenerResult], error)
	CompanyProfile(ctx context.Context, symbol string) (market.Envelope[*market.CompanyProfile], error)
	EquityPriceHistoricalFMP(ctx context.Context, symbol string) (market.Envelope[*market.HistoricalPriceFull], error)
	EquityPriceHistorical(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalPrice], error)
	FundamentalMultiples(ctx context.Context, symbol string) (market.Envelope[[]market.FundamentalMultiple], error)
	BalanceSheet(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheet], error)
	BalanceSheetGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheetGrowth], error)
	CashFlow(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlow], error)
	CashFlowGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlowGrowth], error)
	HistoricalEPS(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalEPS], error)
	KeyMetrics(ctx context.Context, symbol string) (market.Envelope[[]market.KeyMetric], error)
	CompanyNews(ctx context.Context, symbol string) (market.Envelope[[]market.CompanyNews], error)
}

// MarketHandler handles the /assets market data endpoints
type MarketHandler struct {
	BaseHandler
	service MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(service MarketService) *MarketHandler {
	return &MarketHandler{service: service}
}

// envelope writes a market envelope or the error it came with
func envelope[T any](c *gin.Context, h *BaseHandler, env market.Envelope[T], err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, env)
}

// bySymbol runs a per-symbol procedure with the :symbol path parameter
func bySymbol[T any](h *MarketHandler, call func(context.Context, string) (market.Envelope[T], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		env, err := call(c.Request.Context(), c.Param("symbol"))
		envelope(c, &h.BaseHandler, env, err)
	}
}

// EquitySearch godoc
// @ID           equitySearch
// @Summary      Search equities
// @Description  Finds listed equities whose symbol or name matches the query
// @Tags         assets
// @Produce      json
// @Param        query query string true "Search text"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/search [get]
func (h *MarketHandler) EquitySearch(c *gin.Context) {
	env, err := h.service.EquitySearch(c.Request.Context(), c.Query("query"))
	envelope(c, &h.BaseHandler, env, err)
}

// EquityScreener godoc
// @ID           equityScreener
// @Summary      Large-cap screener
// @Description  Lists large-cap Nasdaq equities from the market data vendor
// @Tags         assets
// @Produce      json
// @Success      200 {object} EnvelopeResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/screener [get]
func (h *MarketHandler) EquityScreener(c *gin.Context) {
	env, err := h.service.EquityScreener(c.Request.Context())
	envelope(c, &h.BaseHandler, env, err)
}

// EquityQuote godoc
// @ID           equityQuote
// @Summary      Latest quote
// @Tags         assets
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/quote [get]
func (h *MarketHandler) EquityQuote(c *gin.Context) {
	bySymbol(h, h.service.EquityQuote)(c)
}

// CompanyProfile godoc
// @ID           companyProfile
// @Summary      Company profile
// @Tags         assets
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/profile [get]
func (h *MarketHandler) CompanyProfile(c *gin.Context) {
	bySymbol(h, h.service.CompanyProfile)(c)
}

// EquityPriceHistoricalFMP godoc
// @ID           equityPriceHistoricalFMP
// @Summary      Daily price history
// @Tags         assets
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/prices/daily [get]
func (h *MarketHandler) EquityPriceHistoricalFMP(c *gin.Context) {
	bySymbol(h, h.service.EquityPriceHistoricalFMP)(c)
}

// EquityPriceHistorical godoc
// @ID           equityPriceHistorical
// @Summary      Intraday price bars
// @Tags         assets
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/prices/intraday [get]
func (h *MarketHandler) EquityPriceHistorical(c *gin.Context) {
	bySymbol(h, h.service.EquityPriceHistorical)(c)
}

// FundamentalMultiples godoc
// @ID           fundamentalMultiples
// @Summary      Trailing-twelve-month ratios
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/multiples [get]
func (h *MarketHandler) FundamentalMultiples(c *gin.Context) {
	bySymbol(h, h.service.FundamentalMultiples)(c)
}

// BalanceSheet godoc
// @ID           balance
// @Summary      Balance sheet statements
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/balance [get]
func (h *MarketHandler) BalanceSheet(c *gin.Context) {
	bySymbol(h, h.service.BalanceSheet)(c)
}

// BalanceSheetGrowth godoc
// @ID           balanceGrowth
// @Summary      Balance sheet growth
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/balance-growth [get]
func (h *MarketHandler) BalanceSheetGrowth(c *gin.Context) {
	bySymbol(h, h.service.BalanceSheetGrowth)(c)
}

// CashFlow godoc
// @ID           cash
// @Summary      Cash flow statements
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/cash [get]
func (h *MarketHandler) CashFlow(c *gin.Context) {
	bySymbol(h, h.service.CashFlow)(c)
}

// CashFlowGrowth godoc
// @ID           cashGrowth
// @Summary      Cash flow growth
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/cash-growth [get]
func (h *MarketHandler) CashFlowGrowth(c *gin.Context) {
	bySymbol(h, h.service.CashFlowGrowth)(c)
}

// HistoricalEPS godoc
// @ID           historicalEPS
// @Summary      Earnings per share history
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/eps [get]
func (h *MarketHandler) HistoricalEPS(c *gin.Context) {
	bySymbol(h, h.service.HistoricalEPS)(c)
}

// KeyMetrics godoc
// @ID           keyMetrics
// @Summary      Historical key metrics
// @Tags         fundamentals
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/fundamentals/metrics [get]
func (h *MarketHandler) KeyMetrics(c *gin.Context) {
	bySymbol(h, h.service.KeyMetrics)(c)
}

// CompanyNews godoc
// @ID           newsCompany
// @Summary      Company news
// @Tags         assets
// @Produce      json
// @Param        symbol path string true "Ticker symbol"
// @Success      200 {object} EnvelopeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /assets/{symbol}/news [get]
func (h *MarketHandler) CompanyNews(c *gin.Context) {
	bySymbol(h, h.service.CompanyNews)(c)
}
