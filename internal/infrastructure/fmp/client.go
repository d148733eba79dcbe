// Package fmp is a client for the Financial Modeling Prep REST API. Every
// method returns vendor-neutral market types; raw payload shapes stay private.
package fmp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
)

// maxResponseSize is the maximum allowed response size from FMP (20MB).
// Daily price history for long-listed symbols is the largest payload.
const maxResponseSize = 20 * 1024 * 1024

// ErrUnexpectedPayload indicates a 2xx response that could not be decoded
var ErrUnexpectedPayload = errors.New("fmp: unexpected response payload")

// UpstreamError describes a failed FMP call. The API key is never included.
type UpstreamError struct {
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("fmp: GET %s: HTTP %d: %s", e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("fmp: GET %s: HTTP %d", e.Path, e.StatusCode)
	case e.Message != "":
		return fmt.Sprintf("fmp: GET %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("fmp: GET %s: %v", e.Path, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client talks to Financial Modeling Prep
type Client struct {
	config     *Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new FMP client
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: zap.NewNop(),
	}
	if config.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Quotes, search and screening
// ---------------------------------------------------------------------------

// Quote returns the real-time quote for symbol, unchanged from the vendor
func (c *Client) Quote(ctx context.Context, symbol string) ([]market.EquityQuote, error) {
	var rows []market.EquityQuote
	if err := c.get(ctx, "/api/v3/quote/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []market.EquityQuote{}
	}
	return rows, nil
}

// Search finds symbols whose ticker or name matches query
func (c *Client) Search(ctx context.Context, query string) ([]market.EquitySearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", "50")

	var rows []searchResult
	if err := c.get(ctx, "/api/v3/search", params, &rows); err != nil {
		return nil, err
	}
	return mapSearch(rows), nil
}

// Screener lists actively traded US Nasdaq equities above $500M market cap
func (c *Client) Screener(ctx context.Context) ([]market.EquityScreenerResult, error) {
	params := url.Values{}
	params.Set("marketCapMoreThan", "500000000")
	params.Set("isEtf", "false")
	params.Set("isActivelyTrading", "true")
	params.Set("country", "US")
	params.Set("exchange", "nasdaq")
	params.Set("limit", "500")

	var rows []screenerResult
	if err := c.get(ctx, "/api/v3/stock-screener", params, &rows); err != nil {
		return nil, err
	}
	return mapScreener(rows), nil
}

// Profile returns the company profile for symbol, or nil when FMP has none
func (c *Client) Profile(ctx context.Context, symbol string) (*market.CompanyProfile, error) {
	var rows []profile
	if err := c.get(ctx, "/api/v3/profile/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	return mapProfile(symbol, rows), nil
}

// ---------------------------------------------------------------------------
// Prices
// ---------------------------------------------------------------------------

// HistoricalPriceFull returns end-of-day history, unchanged from the vendor
func (c *Client) HistoricalPriceFull(ctx context.Context, symbol string) (*market.HistoricalPriceFull, error) {
	var out market.HistoricalPriceFull
	if err := c.get(ctx, "/api/v3/historical-price-full/"+url.PathEscape(symbol), nil, &out); err != nil {
		return nil, err
	}
	if out.Historical == nil {
		out.Historical = []market.DailyPriceEntry{}
	}
	return &out, nil
}

// IntradayPrices returns one-minute bars for the latest sessions
func (c *Client) IntradayPrices(ctx context.Context, symbol string) ([]market.HistoricalPrice, error) {
	var rows []chartBar
	if err := c.get(ctx, "/api/v3/historical-chart/1min/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	return mapIntraday(rows), nil
}

// ---------------------------------------------------------------------------
// Fundamentals
// ---------------------------------------------------------------------------

// RatiosTTM returns trailing-twelve-month multiples (zero or one element)
func (c *Client) RatiosTTM(ctx context.Context, symbol string) ([]market.FundamentalMultiple, error) {
	var rows []ratiosTTM
	if err := c.get(ctx, "/api/v3/ratios-ttm/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	return mapFundamentalMultiples(symbol, rows), nil
}

// BalanceSheet returns the last twelve quarterly balance sheets
func (c *Client) BalanceSheet(ctx context.Context, symbol string) ([]market.BalanceSheet, error) {
	var rows []balanceSheet
	if err := c.get(ctx, "/api/v3/balance-sheet-statement/"+url.PathEscape(symbol), quarterly(), &rows); err != nil {
		return nil, err
	}
	return mapBalanceSheets(symbol, rows), nil
}

// BalanceSheetGrowth returns quarterly balance sheet growth rates
func (c *Client) BalanceSheetGrowth(ctx context.Context, symbol string) ([]market.BalanceSheetGrowth, error) {
	var rows []balanceSheetGrowth
	if err := c.get(ctx, "/api/v3/balance-sheet-statement-growth/"+url.PathEscape(symbol), quarterly(), &rows); err != nil {
		return nil, err
	}
	return mapBalanceSheetGrowth(symbol, rows), nil
}

// CashFlow returns the last twelve quarterly cash flow statements
func (c *Client) CashFlow(ctx context.Context, symbol string) ([]market.CashFlow, error) {
	var rows []cashFlow
	if err := c.get(ctx, "/api/v3/cash-flow-statement/"+url.PathEscape(symbol), quarterly(), &rows); err != nil {
		return nil, err
	}
	return mapCashFlows(symbol, rows), nil
}

// CashFlowGrowth returns quarterly cash flow growth rates
func (c *Client) CashFlowGrowth(ctx context.Context, symbol string) ([]market.CashFlowGrowth, error) {
	var rows []cashFlowGrowth
	if err := c.get(ctx, "/api/v3/cash-flow-statement-growth/"+url.PathEscape(symbol), quarterly(), &rows); err != nil {
		return nil, err
	}
	return mapCashFlowGrowth(symbol, rows), nil
}

// EarningsHistory returns the last twelve earnings reports
func (c *Client) EarningsHistory(ctx context.Context, symbol string) ([]market.HistoricalEPS, error) {
	params := url.Values{}
	params.Set("limit", "12")

	var rows []earning
	if err := c.get(ctx, "/api/v3/historical/earning_calendar/"+url.PathEscape(symbol), params, &rows); err != nil {
		return nil, err
	}
	return mapEarnings(symbol, rows), nil
}

// KeyMetrics returns the last twelve quarters of key metrics
func (c *Client) KeyMetrics(ctx context.Context, symbol string) ([]market.KeyMetric, error) {
	var rows []keyMetrics
	if err := c.get(ctx, "/api/v3/key-metrics/"+url.PathEscape(symbol), quarterly(), &rows); err != nil {
		return nil, err
	}
	return mapKeyMetrics(symbol, rows), nil
}

// ---------------------------------------------------------------------------
// News
// ---------------------------------------------------------------------------

// News returns the twenty most recent articles tagged with symbol
func (c *Client) News(ctx context.Context, symbol string) ([]market.CompanyNews, error) {
	params := url.Values{}
	params.Set("tickers", symbol)
	params.Set("limit", "20")

	var rows []stockNews
	if err := c.get(ctx, "/api/v3/stock_news", params, &rows); err != nil {
		return nil, err
	}
	return mapNews(rows), nil
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

func quarterly() url.Values {
	params := url.Values{}
	params.Set("limit", "12")
	params.Set("period", "quarter")
	return params
}

// get performs a GET against path and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "fmp.get", attribute.String("fmp.path", path))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &UpstreamError{Path: path, Err: err}
		}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.config.APIKey)
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("fmp: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Path: path, Err: redact(err, c.config.APIKey)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &UpstreamError{Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("FMP request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode >= 400 {
		return &UpstreamError{Path: path, StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		if msg := errorMessage(body); msg != "" {
			return &UpstreamError{Path: path, StatusCode: resp.StatusCode, Message: msg}
		}
		return &UpstreamError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)}
	}
	return nil
}

// errorMessage extracts FMP's {"Error Message": "..."} body, if present
func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ""
	}
	var apiErr apiError
	if err := json.Unmarshal(trimmed, &apiErr); err != nil {
		return ""
	}
	return apiErr.Message
}

// redact strips the API key from transport errors, which embed the request URL
func redact(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), apiKey, "REDACTED"))
}
