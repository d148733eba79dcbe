// Package market defines the vendor-neutral shapes returned by the market data endpoints.
package market

// ProviderFMP identifies Financial Modeling Prep as the data source of a response.
const ProviderFMP = "fmp"

// Extra carries per-response metadata. It is always an empty object today.
type Extra struct {
	Metadata map[string]any `json:"metadata"`
}

// Envelope wraps every market data response.
type Envelope[T any] struct {
	Results  T      `json:"results"`
	Provider string `json:"provider"`
	Warnings any    `json:"warnings"`
	Chart    any    `json:"chart"`
	Extra    *Extra `json:"extra,omitempty"`
}

// NewEnvelope wraps results with provider "fmp" and an empty metadata object.
func NewEnvelope[T any](results T) Envelope[T] {
	return Envelope[T]{
		Results:  results,
		Provider: ProviderFMP,
		Extra:    &Extra{Metadata: map[string]any{}},
	}
}

// NewSearchEnvelope wraps search results. Search responses carry no extra block.
func NewSearchEnvelope[T any](results T) Envelope[T] {
	return Envelope[T]{
		Results:  results,
		Provider: ProviderFMP,
	}
}

// EquityQuote is a real-time quote, passed through unchanged from the vendor.
type EquityQuote struct {
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	Exchange             string  `json:"exchange"`
	Price                float64 `json:"price"`
	Open                 float64 `json:"open"`
	PreviousClose        float64 `json:"previousClose"`
	DayHigh              float64 `json:"dayHigh"`
	DayLow               float64 `json:"dayLow"`
	YearHigh             float64 `json:"yearHigh"`
	YearLow              float64 `json:"yearLow"`
	PriceAvg50           float64 `json:"priceAvg50"`
	PriceAvg200          float64 `json:"priceAvg200"`
	Change               float64 `json:"change"`
	ChangesPercentage    float64 `json:"changesPercentage"`
	Volume               float64 `json:"volume"`
	AvgVolume            float64 `json:"avgVolume"`
	MarketCap            float64 `json:"marketCap"`
	EPS                  float64 `json:"eps"`
	PE                   float64 `json:"pe"`
	SharesOutstanding    float64 `json:"sharesOutstanding"`
	EarningsAnnouncement *string `json:"earningsAnnouncement,omitempty"`
	Timestamp            int64   `json:"timestamp"`
}

// EquitySearchResult is one row of a ticker search, in Nasdaq symbol directory layout.
type EquitySearchResult struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	NasdaqTraded    string  `json:"nasdaq_traded"`
	Exchange        string  `json:"exchange"`
	MarketCategory  string  `json:"market_category"`
	ETF             string  `json:"etf"`
	RoundLotSize    int     `json:"round_lot_size"`
	TestIssue       string  `json:"test_issue"`
	FinancialStatus string  `json:"financial_status"`
	CQSSymbol       *string `json:"cqs_symbol"`
	NasdaqSymbol    string  `json:"nasdaq_symbol"`
	NextShares      string  `json:"next_shares"`
}

// EquityScreenerResult is one row of the vendor stock screener.
type EquityScreenerResult struct {
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	MarketCap          float64 `json:"market_cap"`
	Sector             string  `json:"sector"`
	Industry           string  `json:"industry"`
	Beta               float64 `json:"beta"`
	Price              float64 `json:"price"`
	LastAnnualDividend float64 `json:"last_annual_dividend"`
	Volume             float64 `json:"volume"`
	Exchange           string  `json:"exchange"`
	ExchangeName       string  `json:"exchange_name"`
	Country            string  `json:"country"`
	IsETF              bool    `json:"is_etf"`
	ActivelyTrading    bool    `json:"actively_trading"`
	IsFund             bool    `json:"isFund"`
}

// HistoricalPriceFull is the daily price history, passed through from the vendor.
type HistoricalPriceFull struct {
	Symbol     string            `json:"symbol"`
	Historical []DailyPriceEntry `json:"historical"`
}

// DailyPriceEntry is one end-of-day bar.
type DailyPriceEntry struct {
	Date             string  `json:"date"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	AdjClose         float64 `json:"adjclose"`
	Volume           float64 `json:"volume"`
	UnadjustedVolume float64 `json:"unadjustedVolume"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	VWAP             float64 `json:"vwap"`
	Label            string  `json:"label"`
	ChangeOverTime   float64 `json:"changeOverTime"`
}

// HistoricalPrice is one intraday bar.
type HistoricalPrice struct {
	Date       string  `json:"date"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	Volume     float64 `json:"volume"`
	SplitRatio float64 `json:"split_ratio"`
	Dividend   float64 `json:"dividend"`
}

// HistoricalEPS is one earnings report with actual and estimated figures.
type HistoricalEPS struct {
	Date             string   `json:"date"`
	Symbol           string   `json:"symbol"`
	EPSActual        *float64 `json:"eps_actual"`
	EPSEstimated     *float64 `json:"eps_estimated"`
	RevenueEstimated *float64 `json:"revenue_estimated"`
	RevenueActual    *float64 `json:"revenue_actual"`
	ReportingTime    string   `json:"reporting_time"`
	UpdatedAt        string   `json:"updated_at"`
	PeriodEnding     string   `json:"period_ending"`
}

// CompanyNews is a news article mentioning a symbol.
type CompanyNews struct {
	Date    string      `json:"date"`
	Title   string      `json:"title"`
	Text    string      `json:"text"`
	Images  []NewsImage `json:"images"`
	URL     string      `json:"url"`
	Symbols string      `json:"symbols"`
	Source  string      `json:"source"`
}

// NewsImage references an article image.
type NewsImage struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Tag    string `json:"tag"`
}

// CompanyProfile describes the issuer behind a symbol.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	MarketCap   float64 `json:"market_cap"`
	Exchange    string  `json:"exchange"`
	Country     string  `json:"country"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
}
