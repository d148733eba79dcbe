// Package analysis holds the stock analysis record: the last LLM write-up
// generated for a ticker, with the sector, market cap and recommendation
// extracted when it was produced.
package analysis

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockie/backend/internal/domain/shared"
)

// DefaultStaleAfter is how long a generated report is served before it is regenerated
const DefaultStaleAfter = 7 * 24 * time.Hour

// Recommendation is the categorical investment signal attached to a report
type Recommendation string

const (
	RecommendationStrongBuy Recommendation = "strong_buy"
	RecommendationBuy       Recommendation = "buy"
	RecommendationHold      Recommendation = "hold"
	RecommendationSell      Recommendation = "sell"
)

// Recommendations lists every valid recommendation, strongest first
var Recommendations = []Recommendation{
	RecommendationStrongBuy,
	RecommendationBuy,
	RecommendationHold,
	RecommendationSell,
}

// IsValid returns true if r is a known recommendation
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationStrongBuy, RecommendationBuy, RecommendationHold, RecommendationSell:
		return true
	}
	return false
}

// Analysis is the persisted report for one ticker. Ticker is the primary key,
// so there is at most one record per symbol.
type Analysis struct {
	Ticker         string
	Prompt         string
	Response       string
	Sector         Sector
	MarketCap      decimal.Decimal
	Recommendation Recommendation
	CreatedAt      time.Time
}

// NewAnalysis creates a record for a freshly generated report
func NewAnalysis(ticker, prompt, response string, sector Sector, marketCap decimal.Decimal, rec Recommendation, now time.Time) (*Analysis, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, shared.ErrInvalidInput.WithMessage("ticker is required")
	}
	if strings.TrimSpace(response) == "" {
		return nil, shared.NewDomainError("EMPTY_REPORT", "Generated report is empty")
	}
	if !rec.IsValid() {
		rec = RecommendationHold
	}
	if marketCap.IsNegative() {
		marketCap = decimal.Zero
	}
	return &Analysis{
		Ticker:         ticker,
		Prompt:         prompt,
		Response:       response,
		Sector:         sector,
		MarketCap:      marketCap,
		Recommendation: rec,
		CreatedAt:      now.UTC(),
	}, nil
}

// IsFresh reports whether the record is younger than staleAfter at now
func (a *Analysis) IsFresh(now time.Time, staleAfter time.Duration) bool {
	if a == nil || a.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(a.CreatedAt) < staleAfter
}

var (
	labeledRecommendation = regexp.MustCompile(`(?i)recommendation\W{0,10}(strong[\s_-]?buy|strong[\s_-]?sell|buy|hold|sell)\b`)
	anyRecommendation     = regexp.MustCompile(`(?i)\b(strong[\s_-]?buy|strong[\s_-]?sell|buy|hold|sell)\b`)
)

// ParseRecommendation extracts the recommendation from a generated report.
// An explicit "Recommendation: X" label wins; otherwise the first signal word
// is used. Reports with no signal default to hold.
func ParseRecommendation(text string) Recommendation {
	if m := labeledRecommendation.FindStringSubmatch(text); m != nil {
		return normalizeRecommendation(m[1])
	}
	if m := anyRecommendation.FindStringSubmatch(text); m != nil {
		return normalizeRecommendation(m[1])
	}
	return RecommendationHold
}

func normalizeRecommendation(word string) Recommendation {
	w := strings.ToLower(word)
	if strings.HasPrefix(w, "strong") {
		// There is no strong sell grade; it is stored as sell.
		if strings.HasSuffix(w, "sell") {
			return RecommendationSell
		}
		return RecommendationStrongBuy
	}
	return Recommendation(w)
}
