package fmp

import (
	"strconv"
	"strings"
	"time"
)

// clock is swapped in tests that assert the current-year fallback.
var clock = time.Now

// searchResult is an element of /api/v3/search.
type searchResult struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Currency          *string `json:"currency"`
	StockExchange     *string `json:"stockExchange"`
	ExchangeShortName *string `json:"exchangeShortName"`
}

// screenerResult is an element of /api/v3/stock-screener.
type screenerResult struct {
	Symbol             string   `json:"symbol"`
	CompanyName        string   `json:"companyName"`
	MarketCap          float64  `json:"marketCap"`
	Sector             *string  `json:"sector"`
	Industry           *string  `json:"industry"`
	Beta               *float64 `json:"beta"`
	Price              *float64 `json:"price"`
	LastAnnualDividend *float64 `json:"lastAnnualDividend"`
	Volume             *float64 `json:"volume"`
	Exchange           *string  `json:"exchange"`
	ExchangeShortName  *string  `json:"exchangeShortName"`
	Country            *string  `json:"country"`
	IsEtf              *bool    `json:"isEtf"`
	IsFund             *bool    `json:"isFund"`
	IsActivelyTrading  *bool    `json:"isActivelyTrading"`
}

// chartBar is an element of /api/v3/historical-chart/{interval}.
type chartBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// earning is an element of /api/v3/historical/earning_calendar.
type earning struct {
	Date             string   `json:"date"`
	Symbol           *string  `json:"symbol"`
	EPS              *float64 `json:"eps"`
	EPSEstimated     *float64 `json:"epsEstimated"`
	Time             *string  `json:"time"`
	Revenue          *float64 `json:"revenue"`
	RevenueEstimated *float64 `json:"revenueEstimated"`
	UpdatedFromDate  *string  `json:"updatedFromDate"`
	FiscalDateEnding *string  `json:"fiscalDateEnding"`
}

// stockNews is an element of /api/v3/stock_news.
type stockNews struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

// profile is an element of /api/v3/profile.
type profile struct {
	Symbol            string   `json:"symbol"`
	CompanyName       *string  `json:"companyName"`
	Sector            *string  `json:"sector"`
	Industry          *string  `json:"industry"`
	MktCap            *float64 `json:"mktCap"`
	ExchangeShortName *string  `json:"exchangeShortName"`
	Country           *string  `json:"country"`
	Website           *string  `json:"website"`
	Description       *string  `json:"description"`
}

// apiError is the body FMP returns for rejected keys and exhausted plans.
type apiError struct {
	Message string `json:"Error Message"`
}

// calendarYear accepts both "2024" and 2024.
type calendarYear string

func (y *calendarYear) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*y = calendarYear(s)
	return nil
}

// orCurrent parses the leading digits of the year, falling back to the
// current year when nothing usable is present.
func (y calendarYear) orCurrent() int {
	s := strings.TrimSpace(string(y))
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if n, err := strconv.Atoi(s[:end]); err == nil && n != 0 {
		return n
	}
	return clock().Year()
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
