package fmp

import "github.com/stockie/backend/internal/domain/market"

// mapFundamentalMultiples converts the ratios-ttm payload. Only the first
// element is used; an empty payload yields an empty slice.
func mapFundamentalMultiples(symbol string, rows []ratiosTTM) []market.FundamentalMultiple {
	if len(rows) == 0 {
		return []market.FundamentalMultiple{}
	}
	r := rows[0]
	return []market.FundamentalMultiple{{
		Symbol:                                    symbol,
		RevenuePerShareTTM:                        0,
		NetIncomePerShareTTM:                      0,
		OperatingCashFlowPerShareTTM:              floatOr(r.OperatingCashFlowPerShareTTM),
		FreeCashFlowPerShareTTM:                   floatOr(r.FreeCashFlowPerShareTTM),
		CashPerShareTTM:                           floatOr(r.CashPerShareTTM),
		BookValuePerShareTTM:                      0,
		TangibleBookValuePerShareTTM:              0,
		ShareholdersEquityPerShareTTM:             0,
		InterestDebtPerShareTTM:                   0,
		MarketCapTTM:                              0,
		EnterpriseValueTTM:                        0,
		PERatioTTM:                                floatOr(r.PeRatioTTM),
		PriceToSalesRatioTTM:                      floatOr(r.PriceToSalesRatioTTM),
		POCFRatioTTM:                              floatOr(r.PriceToOperatingCashFlowsRatioTTM),
		PFCFRatioTTM:                              floatOr(r.PriceToFreeCashFlowsRatioTTM),
		PBRatioTTM:                                floatOr(r.PriceBookValueRatioTTM),
		PTBRatioTTM:                               floatOr(r.PriceToBookRatioTTM),
		EVToSalesTTM:                              0,
		EnterpriseValueOverEBITDATTM:              floatOr(r.EnterpriseValueMultipleTTM),
		EVToOperatingCashFlowTTM:                  0,
		EVToFreeCashFlowTTM:                       0,
		EarningsYieldTTM:                          0,
		FreeCashFlowYieldTTM:                      0,
		DebtToEquityTTM:                           floatOr(r.DebtEquityRatioTTM),
		DebtToAssetsTTM:                           floatOr(r.DebtRatioTTM),
		NetDebtToEBITDATTM:                        0,
		CurrentRatioTTM:                           floatOr(r.CurrentRatioTTM),
		InterestCoverageTTM:                       floatOr(r.InterestCoverageTTM),
		IncomeQualityTTM:                          0,
		DividendYieldTTM:                          floatOr(r.DividendYieldTTM),
		DividendYieldPercentageTTM:                floatOr(r.DividendYielPercentageTTM),
		DividendToMarketCapTTM:                    0,
		DividendPerShareTTM:                       floatOr(r.DividendPerShareTTM),
		PayoutRatioTTM:                            floatOr(r.PayoutRatioTTM),
		SalesGeneralAndAdministrativeToRevenueTTM: 0,
		ResearchAndDevelopmentToRevenueTTM:        0,
		IntangiblesToTotalAssetsTTM:               0,
		CapexToOperatingCashFlowTTM:               0,
		CapexToRevenueTTM:                         0,
		CapexToDepreciationTTM:                    0,
		StockBasedCompensationToRevenueTTM:        0,
		GrahamNumberTTM:                           0,
		ROICTTM:                                   0,
		ReturnOnTangibleAssetsTTM:                 floatOr(r.ReturnOnAssetsTTM),
		GrahamNetNetTTM:                           0,
		WorkingCapitalTTM:                         0,
		TangibleAssetValueTTM:                     0,
		NetCurrentAssetValueTTM:                   0,
		InvestedCapitalTTM:                        0,
		AverageReceivablesTTM:                     0,
		AveragePayablesTTM:                        0,
		AverageInventoryTTM:                       0,
		DaysSalesOutstandingTTM:                   floatOr(r.DaysOfSalesOutstandingTTM),
		DaysPayablesOutstandingTTM:                floatOr(r.DaysOfPayablesOutstandingTTM),
		DaysOfInventoryOnHandTTM:                  floatOr(r.DaysOfInventoryOutstandingTTM),
		ReceivablesTurnoverTTM:                    floatOr(r.ReceivablesTurnoverTTM),
		PayablesTurnoverTTM:                       floatOr(r.PayablesTurnoverTTM),
		InventoryTurnoverTTM:                      floatOr(r.InventoryTurnoverTTM),
		ROETTM:                                    floatOr(r.ReturnOnEquityTTM),
		CapexPerShareTTM:                          0,
	}}
}

// mapBalanceSheets converts balance sheet statements.
func mapBalanceSheets(symbol string, rows []balanceSheet) []market.BalanceSheet {
	out := make([]market.BalanceSheet, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.BalanceSheet{
			Link:                                  stringOr(r.Link, ""),
			FinalLink:                             stringOr(r.FinalLink, ""),
			PeriodEnding:                          r.Date,
			FiscalPeriod:                          stringOr(r.Period, "Q"),
			FiscalYear:                            r.CalendarYear.orCurrent(),
			Symbol:                                stringOr(r.Symbol, symbol),
			CashAndCashEquivalents:                r.CashAndCashEquivalents,
			ShortTermInvestments:                  r.ShortTermInvestments,
			CashAndShortTermInvestments:           r.CashAndShortTermInvestments,
			NetReceivables:                        r.NetReceivables,
			Inventory:                             r.Inventory,
			OtherCurrentAssets:                    r.OtherCurrentAssets,
			TotalCurrentAssets:                    r.TotalCurrentAssets,
			PropertyPlantEquipmentNet:             r.PropertyPlantEquipmentNet,
			Goodwill:                              r.Goodwill,
			IntangibleAssets:                      r.IntangibleAssets,
			GoodwillAndIntangibleAssets:           r.GoodwillAndIntangibleAssets,
			LongTermInvestments:                   r.LongTermInvestments,
			TaxAssets:                             r.TaxAssets,
			OtherNonCurrentAssets:                 r.OtherNonCurrentAssets,
			TotalNonCurrentAssets:                 r.TotalNonCurrentAssets,
			OtherAssets:                           r.OtherAssets,
			TotalAssets:                           r.TotalAssets,
			AccountPayables:                       r.AccountPayables,
			ShortTermDebt:                         r.ShortTermDebt,
			TaxPayables:                           r.TaxPayables,
			DeferredRevenue:                       r.DeferredRevenue,
			OtherCurrentLiabilities:               r.OtherCurrentLiabilities,
			TotalCurrentLiabilities:               r.TotalCurrentLiabilities,
			LongTermDebt:                          r.LongTermDebt,
			DeferredRevenueNonCurrent:             r.DeferredRevenueNonCurrent,
			DeferrredTaxLiabilitiesNonCurrent:     r.DeferredTaxLiabilitiesNonCurrent,
			OtherNonCurrentLiabilities:            r.OtherNonCurrentLiabilities,
			TotalNonCurrentLiabilities:            r.TotalNonCurrentLiabilities,
			OtherLiabilities:                      r.OtherLiabilities,
			TotalLiabilities:                      r.TotalLiabilities,
			CommonStock:                           r.CommonStock,
			RetainedEarnings:                      r.RetainedEarnings,
			AccumulatedOtherComprehensiveIncome:   r.AccumulatedOtherComprehensiveIncomeLoss,
			TotalShareholdersEquity:               r.TotalStockholdersEquity,
			TotalLiabilitiesAndShareholdersEquity: r.TotalLiabilitiesAndStockholdersEquity,
			TotalInvestments:                      r.TotalInvestments,
			TotalDebt:                             r.TotalDebt,
			NetDebt:                               r.NetDebt,
			GrowthOthertotalStockholdersEquity:    r.OthertotalStockholdersEquity,
		})
	}
	return out
}

// mapBalanceSheetGrowth converts balance sheet growth rows.
func mapBalanceSheetGrowth(symbol string, rows []balanceSheetGrowth) []market.BalanceSheetGrowth {
	out := make([]market.BalanceSheetGrowth, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.BalanceSheetGrowth{
			PeriodEnding:                                r.Date,
			FiscalPeriod:                                stringOr(r.Period, "Q"),
			FiscalYear:                                  r.CalendarYear.orCurrent(),
			Symbol:                                      stringOr(r.Symbol, symbol),
			GrowthCashAndCashEquivalents:                r.GrowthCashAndCashEquivalents,
			GrowthShortTermInvestments:                  r.GrowthShortTermInvestments,
			GrowthCashAndShortTermInvestments:           r.GrowthCashAndShortTermInvestments,
			GrowthNetReceivables:                        r.GrowthNetReceivables,
			GrowthInventory:                             r.GrowthInventory,
			GrowthOtherCurrentAssets:                    r.GrowthOtherCurrentAssets,
			GrowthTotalCurrentAssets:                    r.GrowthTotalCurrentAssets,
			GrowthPropertyPlantEquipmentNet:             r.GrowthPropertyPlantEquipmentNet,
			GrowthGoodwill:                              r.GrowthGoodwill,
			GrowthIntangibleAssets:                      r.GrowthIntangibleAssets,
			GrowthGoodwillAndIntangibleAssets:           r.GrowthGoodwillAndIntangibleAssets,
			GrowthLongTermInvestments:                   r.GrowthLongTermInvestments,
			GrowthTaxAssets:                             r.GrowthTaxAssets,
			GrowthOtherNonCurrentAssets:                 r.GrowthOtherNonCurrentAssets,
			GrowthTotalNonCurrentAssets:                 r.GrowthTotalNonCurrentAssets,
			GrowthOtherAssets:                           r.GrowthOtherAssets,
			GrowthTotalAssets:                           r.GrowthTotalAssets,
			GrowthAccountPayables:                       r.GrowthAccountPayables,
			GrowthShortTermDebt:                         r.GrowthShortTermDebt,
			GrowthTaxPayables:                           r.GrowthTaxPayables,
			GrowthDeferredRevenue:                       r.GrowthDeferredRevenue,
			GrowthOtherCurrentLiabilities:               r.GrowthOtherCurrentLiabilities,
			GrowthTotalCurrentLiabilities:               r.GrowthTotalCurrentLiabilities,
			GrowthLongTermDebt:                          r.GrowthLongTermDebt,
			GrowthDeferredRevenueNonCurrent:             r.GrowthDeferredRevenueNonCurrent,
			GrowthDeferrredTaxLiabilitiesNonCurrent:     r.GrowthDeferredTaxLiabilitiesNonCurrent,
			GrowthOtherNonCurrentLiabilities:            r.GrowthOtherNonCurrentLiabilities,
			GrowthTotalNonCurrentLiabilities:            r.GrowthTotalNonCurrentLiabilities,
			GrowthOtherLiabilities:                      r.GrowthOtherLiabilities,
			GrowthTotalLiabilities:                      r.GrowthTotalLiabilities,
			GrowthCommonStock:                           r.GrowthCommonStock,
			GrowthRetainedEarnings:                      r.GrowthRetainedEarnings,
			GrowthAccumulatedOtherComprehensiveIncome:   r.GrowthAccumulatedOtherComprehensiveIncomeLoss,
			GrowthTotalShareholdersEquity:               r.GrowthTotalStockholdersEquity,
			GrowthTotalLiabilitiesAndShareholdersEquity: r.GrowthTotalLiabilitiesAndStockholdersEquity,
			GrowthTotalInvestments:                      r.GrowthTotalInvestments,
			GrowthTotalDebt:                             r.GrowthTotalDebt,
			GrowthNetDebt:                               r.GrowthNetDebt,
			GrowthOthertotalStockholdersEquity:          r.GrowthOthertotalStockholdersEquity,
		})
	}
	return out
}

// mapCashFlows converts cash flow statements.
func mapCashFlows(symbol string, rows []cashFlow) []market.CashFlow {
	out := make([]market.CashFlow, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.CashFlow{
			Link:                                           stringOr(r.Link, ""),
			FinalLink:                                      stringOr(r.FinalLink, ""),
			PeriodEnding:                                   r.Date,
			FiscalPeriod:                                   stringOr(r.Period, "Q"),
			FiscalYear:                                     r.CalendarYear.orCurrent(),
			Symbol:                                         stringOr(r.Symbol, symbol),
			NetIncome:                                      floatOr(r.NetIncome),
			DepreciationAndAmortization:                    floatOr(r.DepreciationAndAmortization),
			DeferredIncomeTax:                              floatOr(r.DeferredIncomeTax),
			StockBasedCompensation:                         floatOr(r.StockBasedCompensation),
			ChangeInWorkingCapital:                         floatOr(r.ChangeInWorkingCapital),
			AccountReceivables:                             floatOr(r.AccountsReceivables),
			Inventory:                                      floatOr(r.Inventory),
			AccountPayable:                                 floatOr(r.AccountsPayables),
			OtherWorkingCapital:                            floatOr(r.OtherWorkingCapital),
			OtherNonCashItems:                              floatOr(r.OtherNonCashItems),
			NetCashFromOperatingActivities:                 floatOr(r.NetCashProvidedByOperatingActivities),
			OperatingCashFlow:                              floatOr(r.OperatingCashFlow),
			PurchaseOfPropertyPlantAndEquipment:            floatOr(r.InvestmentsInPropertyPlantAndEquipment),
			Acquisitions:                                   floatOr(r.AcquisitionsNet),
			PurchaseOfInvestmentSecurities:                 floatOr(r.PurchasesOfInvestments),
			SaleAndMaturityOfInvestments:                   floatOr(r.SalesMaturitiesOfInvestments),
			OtherInvestingActivities:                       floatOr(r.OtherInvestingActivites),
			NetCashFromInvestingActivities:                 floatOr(r.NetCashUsedForInvestingActivites),
			CapitalExpenditure:                             floatOr(r.CapitalExpenditure),
			RepaymentOfDebt:                                floatOr(r.DebtRepayment),
			CommonStockIssued:                              floatOr(r.CommonStockIssued),
			CommonStockRepurchased:                         floatOr(r.CommonStockRepurchased),
			DividendsPaid:                                  floatOr(r.DividendsPaid),
			OtherFinancingActivities:                       floatOr(r.OtherFinancingActivites),
			GrowthNetCashUsedProvidedByFinancingActivities: floatOr(r.NetCashUsedProvidedByFinancingActivities),
			EffectOfExchangeRateChangesOnCash:              floatOr(r.EffectOfForexChangesOnCash),
			NetChangeInCashAndEquivalents:                  floatOr(r.NetChangeInCash),
			CashAtBeginningOfPeriod:                        floatOr(r.CashAtBeginningOfPeriod),
			CashAtEndOfPeriod:                              floatOr(r.CashAtEndOfPeriod),
			FreeCashFlow:                                   floatOr(r.FreeCashFlow),
		})
	}
	return out
}

// mapCashFlowGrowth converts cash flow growth rows.
func mapCashFlowGrowth(symbol string, rows []cashFlowGrowth) []market.CashFlowGrowth {
	out := make([]market.CashFlowGrowth, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.CashFlowGrowth{
			PeriodEnding:                                   r.Date,
			FiscalPeriod:                                   stringOr(r.Period, "Q"),
			FiscalYear:                                     r.CalendarYear.orCurrent(),
			Symbol:                                         stringOr(r.Symbol, symbol),
			GrowthNetIncome:                                floatOr(r.GrowthNetIncome),
			GrowthDepreciationAndAmortization:              floatOr(r.GrowthDepreciationAndAmortization),
			GrowthDeferredIncomeTax:                        floatOr(r.GrowthDeferredIncomeTax),
			GrowthStockBasedCompensation:                   floatOr(r.GrowthStockBasedCompensation),
			GrowthChangeInWorkingCapital:                   floatOr(r.GrowthChangeInWorkingCapital),
			GrowthAccountReceivables:                       floatOr(r.GrowthAccountsReceivables),
			GrowthInventory:                                floatOr(r.GrowthInventory),
			GrowthAccountPayable:                           floatOr(r.GrowthAccountsPayables),
			GrowthOtherWorkingCapital:                      floatOr(r.GrowthOtherWorkingCapital),
			GrowthOtherNonCashItems:                        floatOr(r.GrowthOtherNonCashItems),
			GrowthNetCashFromOperatingActivities:           floatOr(r.GrowthNetCashProvidedByOperatingActivites),
			GrowthOperatingCashFlow:                        floatOr(r.GrowthOperatingCashFlow),
			GrowthPurchaseOfPropertyPlantAndEquipment:      floatOr(r.GrowthInvestmentsInPropertyPlantAndEquipment),
			GrowthAcquisitions:                             floatOr(r.GrowthAcquisitionsNet),
			GrowthPurchaseOfInvestmentSecurities:           floatOr(r.GrowthPurchasesOfInvestments),
			GrowthSaleAndMaturityOfInvestments:             floatOr(r.GrowthSalesMaturitiesOfInvestments),
			GrowthOtherInvestingActivities:                 floatOr(r.GrowthOtherInvestingActivites),
			GrowthNetCashFromInvestingActivities:           floatOr(r.GrowthNetCashUsedForInvestingActivites),
			GrowthCapitalExpenditure:                       floatOr(r.GrowthCapitalExpenditure),
			GrowthRepaymentOfDebt:                          floatOr(r.GrowthDebtRepayment),
			GrowthCommonStockIssued:                        floatOr(r.GrowthCommonStockIssued),
			GrowthCommonStockRepurchased:                   floatOr(r.GrowthCommonStockRepurchased),
			GrowthDividendsPaid:                            floatOr(r.GrowthDividendsPaid),
			GrowthOtherFinancingActivities:                 floatOr(r.GrowthOtherFinancingActivites),
			GrowthNetCashUsedProvidedByFinancingActivities: floatOr(r.GrowthNetCashUsedProvidedByFinancingActivities),
			GrowthEffectOfExchangeRateChangesOnCash:        floatOr(r.GrowthEffectOfForexChangesOnCash),
			GrowthNetChangeInCashAndEquivalents:            floatOr(r.GrowthNetChangeInCash),
			GrowthCashAtBeginningOfPeriod:                  floatOr(r.GrowthCashAtBeginningOfPeriod),
			GrowthCashAtEndOfPeriod:                        floatOr(r.GrowthCashAtEndOfPeriod),
			GrowthFreeCashFlow:                             floatOr(r.GrowthFreeCashFlow),
		})
	}
	return out
}

// mapKeyMetrics converts quarterly key metrics.
func mapKeyMetrics(symbol string, rows []keyMetrics) []market.KeyMetric {
	out := make([]market.KeyMetric, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.KeyMetric{
			Symbol:                                 stringOr(r.Symbol, symbol),
			MarketCap:                              floatOr(r.MarketCap),
			PERatio:                                floatOr(r.PeRatio),
			PeriodEnding:                           r.Date,
			FiscalPeriod:                           stringOr(r.Period, "Q"),
			CalendarYear:                           r.CalendarYear.orCurrent(),
			RevenuePerShare:                        floatOr(r.RevenuePerShare),
			CapexPerShare:                          floatOr(r.CapexPerShare),
			NetIncomePerShare:                      floatOr(r.NetIncomePerShare),
			OperatingCashFlowPerShare:              floatOr(r.OperatingCashFlowPerShare),
			FreeCashFlowPerShare:                   floatOr(r.FreeCashFlowPerShare),
			CashPerShare:                           floatOr(r.CashPerShare),
			BookValuePerShare:                      floatOr(r.BookValuePerShare),
			TangibleBookValuePerShare:              floatOr(r.TangibleBookValuePerShare),
			ShareholdersEquityPerShare:             floatOr(r.ShareholdersEquityPerShare),
			InterestDebtPerShare:                   floatOr(r.InterestDebtPerShare),
			PriceToSales:                           floatOr(r.PriceToSalesRatio),
			PriceToOperatingCashFlow:               floatOr(r.Pocfratio),
			PriceToFreeCashFlow:                    floatOr(r.PfcfRatio),
			PriceToBook:                            floatOr(r.PbRatio),
			PriceToTangibleBook:                    floatOr(r.PtbRatio),
			EVToSales:                              floatOr(r.EvToSales),
			EVToEBITDA:                             floatOr(r.EnterpriseValueOverEBITDA),
			EVToOperatingCashFlow:                  floatOr(r.EvToOperatingCashFlow),
			EVToFreeCashFlow:                       floatOr(r.EvToFreeCashFlow),
			EarningsYield:                          floatOr(r.EarningsYield),
			FreeCashFlowYield:                      floatOr(r.FreeCashFlowYield),
			DebtToMarketCap:                        0,
			DebtToEquity:                           floatOr(r.DebtToEquity),
			DebtToAssets:                           floatOr(r.DebtToAssets),
			NetDebtToEBITDA:                        floatOr(r.NetDebtToEBITDA),
			CurrentRatio:                           floatOr(r.CurrentRatio),
			InterestCoverage:                       floatOr(r.InterestCoverage),
			IncomeQuality:                          floatOr(r.IncomeQuality),
			PayoutRatio:                            floatOr(r.PayoutRatio),
			SalesGeneralAndAdministrativeToRevenue: floatOr(r.SalesGeneralAndAdministrativeToRevenue),
			ResearchAndDevelopmentToRevenue:        floatOr(r.ResearchAndDdevelopementToRevenue),
			IntangiblesToTotalAssets:               floatOr(r.IntangiblesToTotalAssets),
			CapexToOperatingCashFlow:               floatOr(r.CapexToOperatingCashFlow),
			CapexToRevenue:                         floatOr(r.CapexToRevenue),
			CapexToDepreciation:                    floatOr(r.CapexToDepreciation),
			StockBasedCompensationToRevenue:        floatOr(r.StockBasedCompensationToRevenue),
			WorkingCapital:                         floatOr(r.WorkingCapital),
			TangibleAssetValue:                     floatOr(r.TangibleAssetValue),
			NetCurrentAssetValue:                   floatOr(r.NetCurrentAssetValue),
			EnterpriseValue:                        floatOr(r.EnterpriseValue),
			InvestedCapital:                        floatOr(r.InvestedCapital),
			AverageReceivables:                     floatOr(r.AverageReceivables),
			AveragePayables:                        floatOr(r.AveragePayables),
			AverageInventory:                       floatOr(r.AverageInventory),
			DaysSalesOutstanding:                   floatOr(r.DaysSalesOutstanding),
			DaysPayablesOutstanding:                floatOr(r.DaysPayablesOutstanding),
			DaysOfInventoryOnHand:                  floatOr(r.DaysOfInventoryOnHand),
			ReceivablesTurnover:                    floatOr(r.ReceivablesTurnover),
			PayablesTurnover:                       floatOr(r.PayablesTurnover),
			InventoryTurnover:                      floatOr(r.InventoryTurnover),
			ReturnOnEquity:                         floatOr(r.Roe),
			ReturnOnInvestedCapital:                floatOr(r.Roic),
			ReturnOnTangibleAssets:                 floatOr(r.ReturnOnTangibleAssets),
			DividendYield:                          floatOr(r.DividendYield),
			GrahamNumber:                           floatOr(r.GrahamNumber),
			GrahamNetNet:                           floatOr(r.GrahamNetNet),
		})
	}
	return out
}
