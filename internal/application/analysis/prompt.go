package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stockie/backend/internal/domain/market"
)

// DefaultSystemPrompt instructs the model when no prompt is configured
const DefaultSystemPrompt = `You are an equity research analyst. Using only the data provided, write a concise investment report in markdown covering the business, valuation, financial health, recent news and key risks.
End the report with a single line of the form "Recommendation: <Strong Buy|Buy|Hold|Sell>".`

// PromptInputs is the market data a report prompt is built from
type PromptInputs struct {
	Quote   []market.EquityQuote
	Ratios  []market.FundamentalMultiple
	Metrics []market.KeyMetric
	News    []market.CompanyNews
	Profile *market.CompanyProfile
}

type newsRow struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// BuildPrompt renders the report prompt: one CSV block per data set,
// terminated by END
func BuildPrompt(symbol string, in PromptInputs) (string, error) {
	quote, err := ToCSV(in.Quote)
	if err != nil {
		return "", fmt.Errorf("encode quote: %w", err)
	}
	ratios, err := ToCSV(in.Ratios)
	if err != nil {
		return "", fmt.Errorf("encode ratios: %w", err)
	}
	metrics, err := ToCSV(in.Metrics)
	if err != nil {
		return "", fmt.Errorf("encode metrics: %w", err)
	}

	news := make([]newsRow, 0, len(in.News))
	for _, n := range in.News {
		news = append(news, newsRow{Title: n.Title, Text: n.Text})
	}
	newsCSV, err := ToCSV(news)
	if err != nil {
		return "", fmt.Errorf("encode news: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s \n\n", symbol)
	fmt.Fprintf(&b, "Equity Quote:\n%s \n\n", quote)
	fmt.Fprintf(&b, "Current Fundamentals (TTM):\n%s \n\n", ratios)
	fmt.Fprintf(&b, "Historical Fundamental Metrics:\n%s \n\n", metrics)
	fmt.Fprintf(&b, "News:\n%s \n\n", newsCSV)
	b.WriteString("END\n")
	return b.String(), nil
}

// ToCSV encodes rows as CSV. The header is the JSON keys of the first row in
// declaration order; each cell is the JSON string literal of the value's text
// (null becomes ""). Rows are joined with newlines; no rows yields "".
func ToCSV[T any](rows []T) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	records := make([]orderedObject, 0, len(rows))
	for _, row := range rows {
		obj, err := decodeOrdered(row)
		if err != nil {
			return "", err
		}
		records = append(records, obj)
	}
	headers := records[0].keys
	if len(headers) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, rec := range records {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cell, err := quoteCell(rec.values[h])
			if err != nil {
				return "", err
			}
			cells[i] = cell
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n"), nil
}

type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

// decodeOrdered marshals v and reads its top-level object keys in order
func decodeOrdered(v any) (orderedObject, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return orderedObject{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return orderedObject{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return orderedObject{}, fmt.Errorf("csv rows must encode as JSON objects, got %s", raw)
	}

	obj := orderedObject{values: make(map[string]json.RawMessage)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return orderedObject{}, err
		}
		key, _ := keyTok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return orderedObject{}, err
		}
		obj.keys = append(obj.keys, key)
		obj.values[key] = value
	}
	return obj, nil
}

// quoteCell converts a JSON value to its text form and quotes it as a JSON string
func quoteCell(raw json.RawMessage) (string, error) {
	var text string
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		text = ""
	case trimmed[0] == '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return "", err
		}
	default:
		text = string(trimmed)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
