package market

import (
	"regexp"
	"strings"

	"github.com/stockie/backend/internal/domain/shared"
)

// MaxSearchQueryLength bounds free-text ticker searches.
const MaxSearchQueryLength = 100

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.\-^]{1,10}$`)

// NormalizeSymbol trims and upper-cases a ticker and rejects anything that
// cannot be a listed symbol (BRK.B, BF-B and ^GSPC are accepted).
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", shared.ErrInvalidInput.WithMessage("symbol is required")
	}
	if !symbolPattern.MatchString(s) {
		return "", shared.ErrInvalidInput.WithMessage("symbol must be 1-10 characters of A-Z, 0-9, '.', '-' or '^'")
	}
	return s, nil
}

// NormalizeSearchQuery validates a free-text search query.
func NormalizeSearchQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", shared.ErrInvalidInput.WithMessage("query is required")
	}
	if len(q) > MaxSearchQueryLength {
		return "", shared.ErrInvalidInput.WithMessage("query is too long")
	}
	return q, nil
}
