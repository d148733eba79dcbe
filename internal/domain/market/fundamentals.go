package market

// FundamentalMultiple holds trailing-twelve-month valuation multiples for one symbol.
type FundamentalMultiple struct {
	Symbol                                    string  `json:"symbol"`
	RevenuePerShareTTM                        float64 `json:"revenue_per_share_ttm"`
	NetIncomePerShareTTM                      float64 `json:"net_income_per_share_ttm"`
	OperatingCashFlowPerShareTTM              float64 `json:"operating_cash_flow_per_share_ttm"`
	FreeCashFlowPerShareTTM                   float64 `json:"free_cash_flow_per_share_ttm"`
	CashPerShareTTM                           float64 `json:"cash_per_share_ttm"`
	BookValuePerShareTTM                      float64 `json:"book_value_per_share_ttm"`
	TangibleBookValuePerShareTTM              float64 `json:"tangible_book_value_per_share_ttm"`
	ShareholdersEquityPerShareTTM             float64 `json:"shareholders_equity_per_share_ttm"`
	InterestDebtPerShareTTM                   float64 `json:"interest_debt_per_share_ttm"`
	MarketCapTTM                              float64 `json:"market_cap_ttm"`
	EnterpriseValueTTM                        float64 `json:"enterprise_value_ttm"`
	PERatioTTM                                float64 `json:"pe_ratio_ttm"`
	PriceToSalesRatioTTM                      float64 `json:"price_to_sales_ratio_ttm"`
	POCFRatioTTM                              float64 `json:"pocf_ratio_ttm"`
	PFCFRatioTTM                              float64 `json:"pfcf_ratio_ttm"`
	PBRatioTTM                                float64 `json:"pb_ratio_ttm"`
	PTBRatioTTM                               float64 `json:"ptb_ratio_ttm"`
	EVToSalesTTM                              float64 `json:"ev_to_sales_ttm"`
	EnterpriseValueOverEBITDATTM              float64 `json:"enterprise_value_over_ebitda_ttm"`
	EVToOperatingCashFlowTTM                  float64 `json:"ev_to_operating_cash_flow_ttm"`
	EVToFreeCashFlowTTM                       float64 `json:"ev_to_free_cash_flow_ttm"`
	EarningsYieldTTM                          float64 `json:"earnings_yield_ttm"`
	FreeCashFlowYieldTTM                      float64 `json:"free_cash_flow_yield_ttm"`
	DebtToEquityTTM                           float64 `json:"debt_to_equity_ttm"`
	DebtToAssetsTTM                           float64 `json:"debt_to_assets_ttm"`
	NetDebtToEBITDATTM                        float64 `json:"net_debt_to_ebitda_ttm"`
	CurrentRatioTTM                           float64 `json:"current_ratio_ttm"`
	InterestCoverageTTM                       float64 `json:"interest_coverage_ttm"`
	IncomeQualityTTM                          float64 `json:"income_quality_ttm"`
	DividendYieldTTM                          float64 `json:"dividend_yield_ttm"`
	DividendYieldPercentageTTM                float64 `json:"dividend_yield_percentage_ttm"`
	DividendToMarketCapTTM                    float64 `json:"dividend_to_market_cap_ttm"`
	DividendPerShareTTM                       float64 `json:"dividend_per_share_ttm"`
	PayoutRatioTTM                            float64 `json:"payout_ratio_ttm"`
	SalesGeneralAndAdministrativeToRevenueTTM float64 `json:"sales_general_and_administrative_to_revenue_ttm"`
	ResearchAndDevelopmentToRevenueTTM        float64 `json:"research_and_development_to_revenue_ttm"`
	IntangiblesToTotalAssetsTTM               float64 `json:"intangibles_to_total_assets_ttm"`
	CapexToOperatingCashFlowTTM               float64 `json:"capex_to_operating_cash_flow_ttm"`
	CapexToRevenueTTM                         float64 `json:"capex_to_revenue_ttm"`
	CapexToDepreciationTTM                    float64 `json:"capex_to_depreciation_ttm"`
	StockBasedCompensationToRevenueTTM        float64 `json:"stock_based_compensation_to_revenue_ttm"`
	GrahamNumberTTM                           float64 `json:"graham_number_ttm"`
	ROICTTM                                   float64 `json:"roic_ttm"`
	ReturnOnTangibleAssetsTTM                 float64 `json:"return_on_tangible_assets_ttm"`
	GrahamNetNetTTM                           float64 `json:"graham_net_net_ttm"`
	WorkingCapitalTTM                         float64 `json:"working_capital_ttm"`
	TangibleAssetValueTTM                     float64 `json:"tangible_asset_value_ttm"`
	NetCurrentAssetValueTTM                   float64 `json:"net_current_asset_value_ttm"`
	InvestedCapitalTTM                        float64 `json:"invested_capital_ttm"`
	AverageReceivablesTTM                     float64 `json:"average_receivables_ttm"`
	AveragePayablesTTM                        float64 `json:"average_payables_ttm"`
	AverageInventoryTTM                       float64 `json:"average_inventory_ttm"`
	DaysSalesOutstandingTTM                   float64 `json:"days_sales_outstanding_ttm"`
	DaysPayablesOutstandingTTM                float64 `json:"days_payables_outstanding_ttm"`
	DaysOfInventoryOnHandTTM                  float64 `json:"days_of_inventory_on_hand_ttm"`
	ReceivablesTurnoverTTM                    float64 `json:"receivables_turnover_ttm"`
	PayablesTurnoverTTM                       float64 `json:"payables_turnover_ttm"`
	InventoryTurnoverTTM                      float64 `json:"inventory_turnover_ttm"`
	ROETTM                                    float64 `json:"roe_ttm"`
	CapexPerShareTTM                          float64 `json:"capex_per_share_ttm"`
}

// BalanceSheet is one quarterly balance sheet statement. Missing line items are null.
type BalanceSheet struct {
	Link                                  string   `json:"link"`
	FinalLink                             string   `json:"final_link"`
	PeriodEnding                          string   `json:"period_ending"`
	FiscalPeriod                          string   `json:"fiscal_period"`
	FiscalYear                            int      `json:"fiscal_year"`
	Symbol                                string   `json:"symbol"`
	CashAndCashEquivalents                *float64 `json:"cash_and_cash_equivalents"`
	ShortTermInvestments                  *float64 `json:"short_term_investments"`
	CashAndShortTermInvestments           *float64 `json:"cash_and_short_term_investments"`
	NetReceivables                        *float64 `json:"net_receivables"`
	Inventory                             *float64 `json:"inventory"`
	OtherCurrentAssets                    *float64 `json:"other_current_assets"`
	TotalCurrentAssets                    *float64 `json:"total_current_assets"`
	PropertyPlantEquipmentNet             *float64 `json:"property_plant_equipment_net"`
	Goodwill                              *float64 `json:"goodwill"`
	IntangibleAssets                      *float64 `json:"intangible_assets"`
	GoodwillAndIntangibleAssets           *float64 `json:"goodwill_and_intangible_assets"`
	LongTermInvestments                   *float64 `json:"long_term_investments"`
	TaxAssets                             *float64 `json:"tax_assets"`
	OtherNonCurrentAssets                 *float64 `json:"other_non_current_assets"`
	TotalNonCurrentAssets                 *float64 `json:"total_non_current_assets"`
	OtherAssets                           *float64 `json:"other_assets"`
	TotalAssets                           *float64 `json:"total_assets"`
	AccountPayables                       *float64 `json:"account_payables"`
	ShortTermDebt                         *float64 `json:"short_term_debt"`
	TaxPayables                           *float64 `json:"tax_payables"`
	DeferredRevenue                       *float64 `json:"deferred_revenue"`
	OtherCurrentLiabilities               *float64 `json:"other_current_liabilities"`
	TotalCurrentLiabilities               *float64 `json:"total_current_liabilities"`
	LongTermDebt                          *float64 `json:"long_term_debt"`
	DeferredRevenueNonCurrent             *float64 `json:"deferred_revenue_non_current"`
	DeferrredTaxLiabilitiesNonCurrent     *float64 `json:"deferrred_tax_liabilities_non_current"`
	OtherNonCurrentLiabilities            *float64 `json:"other_non_current_liabilities"`
	TotalNonCurrentLiabilities            *float64 `json:"total_non_current_liabilities"`
	OtherLiabilities                      *float64 `json:"other_liabilities"`
	TotalLiabilities                      *float64 `json:"total_liabilities"`
	CommonStock                           *float64 `json:"common_stock"`
	RetainedEarnings                      *float64 `json:"retained_earnings"`
	AccumulatedOtherComprehensiveIncome   *float64 `json:"accumulated_other_comprehensive_income"`
	TotalShareholdersEquity               *float64 `json:"total_shareholders_equity"`
	TotalLiabilitiesAndShareholdersEquity *float64 `json:"total_liabilities_and_shareholders_equity"`
	TotalInvestments                      *float64 `json:"total_investments"`
	TotalDebt                             *float64 `json:"total_debt"`
	NetDebt                               *float64 `json:"net_debt"`
	GrowthOthertotalStockholdersEquity    *float64 `json:"growthOthertotalStockholdersEquity"`
}

// BalanceSheetGrowth holds quarter-over-quarter growth of balance sheet line items.
type BalanceSheetGrowth struct {
	PeriodEnding                                string   `json:"period_ending"`
	FiscalPeriod                                string   `json:"fiscal_period"`
	FiscalYear                                  int      `json:"fiscal_year"`
	Symbol                                      string   `json:"symbol"`
	GrowthCashAndCashEquivalents                *float64 `json:"growth_cash_and_cash_equivalents"`
	GrowthShortTermInvestments                  *float64 `json:"growth_short_term_investments"`
	GrowthCashAndShortTermInvestments           *float64 `json:"growth_cash_and_short_term_investments"`
	GrowthNetReceivables                        *float64 `json:"growth_net_receivables"`
	GrowthInventory                             *float64 `json:"growth_inventory"`
	GrowthOtherCurrentAssets                    *float64 `json:"growth_other_current_assets"`
	GrowthTotalCurrentAssets                    *float64 `json:"growth_total_current_assets"`
	GrowthPropertyPlantEquipmentNet             *float64 `json:"growth_property_plant_equipment_net"`
	GrowthGoodwill                              *float64 `json:"growth_goodwill"`
	GrowthIntangibleAssets                      *float64 `json:"growth_intangible_assets"`
	GrowthGoodwillAndIntangibleAssets           *float64 `json:"growth_goodwill_and_intangible_assets"`
	GrowthLongTermInvestments                   *float64 `json:"growth_long_term_investments"`
	GrowthTaxAssets                             *float64 `json:"growth_tax_assets"`
	GrowthOtherNonCurrentAssets                 *float64 `json:"growth_other_non_current_assets"`
	GrowthTotalNonCurrentAssets                 *float64 `json:"growth_total_non_current_assets"`
	GrowthOtherAssets                           *float64 `json:"growth_other_assets"`
	GrowthTotalAssets                           *float64 `json:"growth_total_assets"`
	GrowthAccountPayables                       *float64 `json:"growth_account_payables"`
	GrowthShortTermDebt                         *float64 `json:"growth_short_term_debt"`
	GrowthTaxPayables                           *float64 `json:"growth_tax_payables"`
	GrowthDeferredRevenue                       *float64 `json:"growth_deferred_revenue"`
	GrowthOtherCurrentLiabilities               *float64 `json:"growth_other_current_liabilities"`
	GrowthTotalCurrentLiabilities               *float64 `json:"growth_total_current_liabilities"`
	GrowthLongTermDebt                          *float64 `json:"growth_long_term_debt"`
	GrowthDeferredRevenueNonCurrent             *float64 `json:"growth_deferred_revenue_non_current"`
	GrowthDeferrredTaxLiabilitiesNonCurrent     *float64 `json:"growth_deferrred_tax_liabilities_non_current"`
	GrowthOtherNonCurrentLiabilities            *float64 `json:"growth_other_non_current_liabilities"`
	GrowthTotalNonCurrentLiabilities            *float64 `json:"growth_total_non_current_liabilities"`
	GrowthOtherLiabilities                      *float64 `json:"growth_other_liabilities"`
	GrowthTotalLiabilities                      *float64 `json:"growth_total_liabilities"`
	GrowthCommonStock                           *float64 `json:"growth_common_stock"`
	GrowthRetainedEarnings                      *float64 `json:"growth_retained_earnings"`
	GrowthAccumulatedOtherComprehensiveIncome   *float64 `json:"growth_accumulated_other_comprehensive_income"`
	GrowthTotalShareholdersEquity               *float64 `json:"growth_total_shareholders_equity"`
	GrowthTotalLiabilitiesAndShareholdersEquity *float64 `json:"growth_total_liabilities_and_shareholders_equity"`
	GrowthTotalInvestments                      *float64 `json:"growth_total_investments"`
	GrowthTotalDebt                             *float64 `json:"growth_total_debt"`
	GrowthNetDebt                               *float64 `json:"growth_net_debt"`
	GrowthOthertotalStockholdersEquity          *float64 `json:"growthOthertotalStockholdersEquity"`
}

// CashFlow is one quarterly cash flow statement. Missing line items are 0.
type CashFlow struct {
	Link                                           string  `json:"link"`
	FinalLink                                      string  `json:"final_link"`
	PeriodEnding                                   string  `json:"period_ending"`
	FiscalPeriod                                   string  `json:"fiscal_period"`
	FiscalYear                                     int     `json:"fiscal_year"`
	Symbol                                         string  `json:"symbol"`
	NetIncome                                      float64 `json:"net_income"`
	DepreciationAndAmortization                    float64 `json:"depreciation_and_amortization"`
	DeferredIncomeTax                              float64 `json:"deferred_income_tax"`
	StockBasedCompensation                         float64 `json:"stock_based_compensation"`
	ChangeInWorkingCapital                         float64 `json:"change_in_working_capital"`
	AccountReceivables                             float64 `json:"account_receivables"`
	Inventory                                      float64 `json:"inventory"`
	AccountPayable                                 float64 `json:"account_payable"`
	OtherWorkingCapital                            float64 `json:"other_working_capital"`
	OtherNonCashItems                              float64 `json:"other_non_cash_items"`
	NetCashFromOperatingActivities                 float64 `json:"net_cash_from_operating_activities"`
	OperatingCashFlow                              float64 `json:"operating_cash_flow"`
	PurchaseOfPropertyPlantAndEquipment            float64 `json:"purchase_of_property_plant_and_equipment"`
	Acquisitions                                   float64 `json:"acquisitions"`
	PurchaseOfInvestmentSecurities                 float64 `json:"purchase_of_investment_securities"`
	SaleAndMaturityOfInvestments                   float64 `json:"sale_and_maturity_of_investments"`
	OtherInvestingActivities                       float64 `json:"other_investing_activities"`
	NetCashFromInvestingActivities                 float64 `json:"net_cash_from_investing_activities"`
	CapitalExpenditure                             float64 `json:"capital_expenditure"`
	RepaymentOfDebt                                float64 `json:"repayment_of_debt"`
	CommonStockIssued                              float64 `json:"common_stock_issued"`
	CommonStockRepurchased                         float64 `json:"common_stock_repurchased"`
	DividendsPaid                                  float64 `json:"dividends_paid"`
	OtherFinancingActivities                       float64 `json:"other_financing_activities"`
	GrowthNetCashUsedProvidedByFinancingActivities float64 `json:"growthNetCashUsedProvidedByFinancingActivities"`
	EffectOfExchangeRateChangesOnCash              float64 `json:"effect_of_exchange_rate_changes_on_cash"`
	NetChangeInCashAndEquivalents                  float64 `json:"net_change_in_cash_and_equivalents"`
	CashAtBeginningOfPeriod                        float64 `json:"cash_at_beginning_of_period"`
	CashAtEndOfPeriod                              float64 `json:"cash_at_end_of_period"`
	FreeCashFlow                                   float64 `json:"free_cash_flow"`
}

// CashFlowGrowth holds quarter-over-quarter growth of cash flow line items.
type CashFlowGrowth struct {
	PeriodEnding                                   string  `json:"period_ending"`
	FiscalPeriod                                   string  `json:"fiscal_period"`
	FiscalYear                                     int     `json:"fiscal_year"`
	Symbol                                         string  `json:"symbol"`
	GrowthNetIncome                                float64 `json:"growth_net_income"`
	GrowthDepreciationAndAmortization              float64 `json:"growth_depreciation_and_amortization"`
	GrowthDeferredIncomeTax                        float64 `json:"growth_deferred_income_tax"`
	GrowthStockBasedCompensation                   float64 `json:"growth_stock_based_compensation"`
	GrowthChangeInWorkingCapital                   float64 `json:"growth_change_in_working_capital"`
	GrowthAccountReceivables                       float64 `json:"growth_account_receivables"`
	GrowthInventory                                float64 `json:"growth_inventory"`
	GrowthAccountPayable                           float64 `json:"growth_account_payable"`
	GrowthOtherWorkingCapital                      float64 `json:"growth_other_working_capital"`
	GrowthOtherNonCashItems                        float64 `json:"growth_other_non_cash_items"`
	GrowthNetCashFromOperatingActivities           float64 `json:"growth_net_cash_from_operating_activities"`
	GrowthOperatingCashFlow                        float64 `json:"growth_operating_cash_flow"`
	GrowthPurchaseOfPropertyPlantAndEquipment      float64 `json:"growth_purchase_of_property_plant_and_equipment"`
	GrowthAcquisitions                             float64 `json:"growth_acquisitions"`
	GrowthPurchaseOfInvestmentSecurities           float64 `json:"growth_purchase_of_investment_securities"`
	GrowthSaleAndMaturityOfInvestments             float64 `json:"growth_sale_and_maturity_of_investments"`
	GrowthOtherInvestingActivities                 float64 `json:"growth_other_investing_activities"`
	GrowthNetCashFromInvestingActivities           float64 `json:"growth_net_cash_from_investing_activities"`
	GrowthCapitalExpenditure                       float64 `json:"growth_capital_expenditure"`
	GrowthRepaymentOfDebt                          float64 `json:"growth_repayment_of_debt"`
	GrowthCommonStockIssued                        float64 `json:"growth_common_stock_issued"`
	GrowthCommonStockRepurchased                   float64 `json:"growth_common_stock_repurchased"`
	GrowthDividendsPaid                            float64 `json:"growth_dividends_paid"`
	GrowthOtherFinancingActivities                 float64 `json:"growth_other_financing_activities"`
	GrowthNetCashUsedProvidedByFinancingActivities float64 `json:"growthNetCashUsedProvidedByFinancingActivities"`
	GrowthEffectOfExchangeRateChangesOnCash        float64 `json:"growth_effect_of_exchange_rate_changes_on_cash"`
	GrowthNetChangeInCashAndEquivalents            float64 `json:"growth_net_change_in_cash_and_equivalents"`
	GrowthCashAtBeginningOfPeriod                  float64 `json:"growth_cash_at_beginning_of_period"`
	GrowthCashAtEndOfPeriod                        float64 `json:"growth_cash_at_end_of_period"`
	GrowthFreeCashFlow                             float64 `json:"growth_free_cash_flow"`
}

// KeyMetric is one quarter of per-share figures, valuation ratios and efficiency metrics.
type KeyMetric struct {
	Symbol                                 string  `json:"symbol"`
	MarketCap                              float64 `json:"market_cap"`
	PERatio                                float64 `json:"pe_ratio"`
	PeriodEnding                           string  `json:"period_ending"`
	FiscalPeriod                           string  `json:"fiscal_period"`
	CalendarYear                           int     `json:"calendar_year"`
	RevenuePerShare                        float64 `json:"revenue_per_share"`
	CapexPerShare                          float64 `json:"capex_per_share"`
	NetIncomePerShare                      float64 `json:"net_income_per_share"`
	OperatingCashFlowPerShare              float64 `json:"operating_cash_flow_per_share"`
	FreeCashFlowPerShare                   float64 `json:"free_cash_flow_per_share"`
	CashPerShare                           float64 `json:"cash_per_share"`
	BookValuePerShare                      float64 `json:"book_value_per_share"`
	TangibleBookValuePerShare              float64 `json:"tangible_book_value_per_share"`
	ShareholdersEquityPerShare             float64 `json:"shareholders_equity_per_share"`
	InterestDebtPerShare                   float64 `json:"interest_debt_per_share"`
	PriceToSales                           float64 `json:"price_to_sales"`
	PriceToOperatingCashFlow               float64 `json:"price_to_operating_cash_flow"`
	PriceToFreeCashFlow                    float64 `json:"price_to_free_cash_flow"`
	PriceToBook                            float64 `json:"price_to_book"`
	PriceToTangibleBook                    float64 `json:"price_to_tangible_book"`
	EVToSales                              float64 `json:"ev_to_sales"`
	EVToEBITDA                             float64 `json:"ev_to_ebitda"`
	EVToOperatingCashFlow                  float64 `json:"ev_to_operating_cash_flow"`
	EVToFreeCashFlow                       float64 `json:"ev_to_free_cash_flow"`
	EarningsYield                          float64 `json:"earnings_yield"`
	FreeCashFlowYield                      float64 `json:"free_cash_flow_yield"`
	DebtToMarketCap                        float64 `json:"debt_to_market_cap"`
	DebtToEquity                           float64 `json:"debt_to_equity"`
	DebtToAssets                           float64 `json:"debt_to_assets"`
	NetDebtToEBITDA                        float64 `json:"net_debt_to_ebitda"`
	CurrentRatio                           float64 `json:"current_ratio"`
	InterestCoverage                       float64 `json:"interest_coverage"`
	IncomeQuality                          float64 `json:"income_quality"`
	PayoutRatio                            float64 `json:"payout_ratio"`
	SalesGeneralAndAdministrativeToRevenue float64 `json:"sales_general_and_administrative_to_revenue"`
	ResearchAndDevelopmentToRevenue        float64 `json:"research_and_development_to_revenue"`
	IntangiblesToTotalAssets               float64 `json:"intangibles_to_total_assets"`
	CapexToOperatingCashFlow               float64 `json:"capex_to_operating_cash_flow"`
	CapexToRevenue                         float64 `json:"capex_to_revenue"`
	CapexToDepreciation                    float64 `json:"capex_to_depreciation"`
	StockBasedCompensationToRevenue        float64 `json:"stock_based_compensation_to_revenue"`
	WorkingCapital                         float64 `json:"working_capital"`
	TangibleAssetValue                     float64 `json:"tangible_asset_value"`
	NetCurrentAssetValue                   float64 `json:"net_current_asset_value"`
	EnterpriseValue                        float64 `json:"enterprise_value"`
	InvestedCapital                        float64 `json:"invested_capital"`
	AverageReceivables                     float64 `json:"average_receivables"`
	AveragePayables                        float64 `json:"average_payables"`
	AverageInventory                       float64 `json:"average_inventory"`
	DaysSalesOutstanding                   float64 `json:"days_sales_outstanding"`
	DaysPayablesOutstanding                float64 `json:"days_payables_outstanding"`
	DaysOfInventoryOnHand                  float64 `json:"days_of_inventory_on_hand"`
	ReceivablesTurnover                    float64 `json:"receivables_turnover"`
	PayablesTurnover                       float64 `json:"payables_turnover"`
	InventoryTurnover                      float64 `json:"inventory_turnover"`
	ReturnOnEquity                         float64 `json:"return_on_equity"`
	ReturnOnInvestedCapital                float64 `json:"return_on_invested_capital"`
	ReturnOnTangibleAssets                 float64 `json:"return_on_tangible_assets"`
	DividendYield                          float64 `json:"dividend_yield"`
	GrahamNumber                           float64 `json:"graham_number"`
	GrahamNetNet                           float64 `json:"graham_net_net"`
}
