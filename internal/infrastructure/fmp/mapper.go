package fmp

import "github.com/stockie/backend/internal/domain/market"

func mapSearch(rows []searchResult) []market.EquitySearchResult {
	out := make([]market.EquitySearchResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.EquitySearchResult{
			Symbol:          r.Symbol,
			Name:            r.Name,
			NasdaqTraded:    "Y",
			Exchange:        stringOr(r.ExchangeShortName, ""),
			MarketCategory:  "",
			ETF:             "N",
			RoundLotSize:    100,
			TestIssue:       "N",
			FinancialStatus: "",
			CQSSymbol:       nil,
			NasdaqSymbol:    r.Symbol,
			NextShares:      "",
		})
	}
	return out
}

func mapScreener(rows []screenerResult) []market.EquityScreenerResult {
	out := make([]market.EquityScreenerResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.EquityScreenerResult{
			Symbol:             r.Symbol,
			Name:               r.CompanyName,
			MarketCap:          r.MarketCap,
			Sector:             stringOr(r.Sector, ""),
			Industry:           stringOr(r.Industry, ""),
			Beta:               floatOr(r.Beta),
			Price:              floatOr(r.Price),
			LastAnnualDividend: floatOr(r.LastAnnualDividend),
			Volume:             floatOr(r.Volume),
			Exchange:           stringOr(r.Exchange, ""),
			ExchangeName:       stringOr(r.ExchangeShortName, ""),
			Country:            stringOr(r.Country, ""),
			IsETF:              boolOr(r.IsEtf, false),
			ActivelyTrading:    boolOr(r.IsActivelyTrading, true),
			IsFund:             boolOr(r.IsFund, false),
		})
	}
	return out
}

func mapIntraday(rows []chartBar) []market.HistoricalPrice {
	out := make([]market.HistoricalPrice, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.HistoricalPrice{
			Date:   r.Date,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	return out
}

func mapEarnings(symbol string, rows []earning) []market.HistoricalEPS {
	out := make([]market.HistoricalEPS, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.HistoricalEPS{
			Date:             r.Date,
			Symbol:           stringOr(r.Symbol, symbol),
			EPSActual:        r.EPS,
			EPSEstimated:     r.EPSEstimated,
			RevenueEstimated: r.RevenueEstimated,
			RevenueActual:    r.Revenue,
			ReportingTime:    stringOr(r.Time, ""),
			UpdatedAt:        stringOr(r.UpdatedFromDate, ""),
			PeriodEnding:     stringOr(r.FiscalDateEnding, r.Date),
		})
	}
	return out
}

func mapNews(rows []stockNews) []market.CompanyNews {
	out := make([]market.CompanyNews, 0, len(rows))
	for _, n := range rows {
		images := []market.NewsImage{}
		if n.Image != "" {
			images = append(images, market.NewsImage{URL: n.Image})
		}
		out = append(out, market.CompanyNews{
			Date:    n.PublishedDate,
			Title:   n.Title,
			Text:    n.Text,
			Images:  images,
			URL:     n.URL,
			Symbols: n.Symbol,
			Source:  n.Site,
		})
	}
	return out
}

func mapProfile(symbol string, rows []profile) *market.CompanyProfile {
	if len(rows) == 0 {
		return nil
	}
	r := rows[0]
	sym := r.Symbol
	if sym == "" {
		sym = symbol
	}
	return &market.CompanyProfile{
		Symbol:      sym,
		CompanyName: stringOr(r.CompanyName, ""),
		Sector:      stringOr(r.Sector, ""),
		Industry:    stringOr(r.Industry, ""),
		MarketCap:   floatOr(r.MktCap),
		Exchange:    stringOr(r.ExchangeShortName, ""),
		Country:     stringOr(r.Country, ""),
		Website:     stringOr(r.Website, ""),
		Description: stringOr(r.Description, ""),
	}
}
