package fmp

// ratiosTTM is an element of /api/v3/ratios-ttm.
type ratiosTTM struct {
	OperatingCashFlowPerShareTTM      *float64 `json:"operatingCashFlowPerShareTTM"`
	FreeCashFlowPerShareTTM           *float64 `json:"freeCashFlowPerShareTTM"`
	CashPerShareTTM                   *float64 `json:"cashPerShareTTM"`
	PeRatioTTM                        *float64 `json:"peRatioTTM"`
	PriceToSalesRatioTTM              *float64 `json:"priceToSalesRatioTTM"`
	PriceToOperatingCashFlowsRatioTTM *float64 `json:"priceToOperatingCashFlowsRatioTTM"`
	PriceToFreeCashFlowsRatioTTM      *float64 `json:"priceToFreeCashFlowsRatioTTM"`
	PriceBookValueRatioTTM            *float64 `json:"priceBookValueRatioTTM"`
	PriceToBookRatioTTM               *float64 `json:"priceToBookRatioTTM"`
	EnterpriseValueMultipleTTM        *float64 `json:"enterpriseValueMultipleTTM"`
	DebtEquityRatioTTM                *float64 `json:"debtEquityRatioTTM"`
	DebtRatioTTM                      *float64 `json:"debtRatioTTM"`
	CurrentRatioTTM                   *float64 `json:"currentRatioTTM"`
	InterestCoverageTTM               *float64 `json:"interestCoverageTTM"`
	DividendYieldTTM                  *float64 `json:"dividendYieldTTM"`
	DividendYielPercentageTTM         *float64 `json:"dividendYielPercentageTTM"`
	DividendPerShareTTM               *float64 `json:"dividendPerShareTTM"`
	PayoutRatioTTM                    *float64 `json:"payoutRatioTTM"`
	ReturnOnAssetsTTM                 *float64 `json:"returnOnAssetsTTM"`
	DaysOfSalesOutstandingTTM         *float64 `json:"daysOfSalesOutstandingTTM"`
	DaysOfPayablesOutstandingTTM      *float64 `json:"daysOfPayablesOutstandingTTM"`
	DaysOfInventoryOutstandingTTM     *float64 `json:"daysOfInventoryOutstandingTTM"`
	ReceivablesTurnoverTTM            *float64 `json:"receivablesTurnoverTTM"`
	PayablesTurnoverTTM               *float64 `json:"payablesTurnoverTTM"`
	InventoryTurnoverTTM              *float64 `json:"inventoryTurnoverTTM"`
	ReturnOnEquityTTM                 *float64 `json:"returnOnEquityTTM"`
}

// balanceSheet is an element of /api/v3/balance-sheet-statement.
type balanceSheet struct {
	Date                                    string       `json:"date"`
	Symbol                                  *string      `json:"symbol"`
	Period                                  *string      `json:"period"`
	CalendarYear                            calendarYear `json:"calendarYear"`
	Link                                    *string      `json:"link"`
	FinalLink                               *string      `json:"finalLink"`
	CashAndCashEquivalents                  *float64     `json:"cashAndCashEquivalents"`
	ShortTermInvestments                    *float64     `json:"shortTermInvestments"`
	CashAndShortTermInvestments             *float64     `json:"cashAndShortTermInvestments"`
	NetReceivables                          *float64     `json:"netReceivables"`
	Inventory                               *float64     `json:"inventory"`
	OtherCurrentAssets                      *float64     `json:"otherCurrentAssets"`
	TotalCurrentAssets                      *float64     `json:"totalCurrentAssets"`
	PropertyPlantEquipmentNet               *float64     `json:"propertyPlantEquipmentNet"`
	Goodwill                                *float64     `json:"goodwill"`
	IntangibleAssets                        *float64     `json:"intangibleAssets"`
	GoodwillAndIntangibleAssets             *float64     `json:"goodwillAndIntangibleAssets"`
	LongTermInvestments                     *float64     `json:"longTermInvestments"`
	TaxAssets                               *float64     `json:"taxAssets"`
	OtherNonCurrentAssets                   *float64     `json:"otherNonCurrentAssets"`
	TotalNonCurrentAssets                   *float64     `json:"totalNonCurrentAssets"`
	OtherAssets                             *float64     `json:"otherAssets"`
	TotalAssets                             *float64     `json:"totalAssets"`
	AccountPayables                         *float64     `json:"accountPayables"`
	ShortTermDebt                           *float64     `json:"shortTermDebt"`
	TaxPayables                             *float64     `json:"taxPayables"`
	DeferredRevenue                         *float64     `json:"deferredRevenue"`
	OtherCurrentLiabilities                 *float64     `json:"otherCurrentLiabilities"`
	TotalCurrentLiabilities                 *float64     `json:"totalCurrentLiabilities"`
	LongTermDebt                            *float64     `json:"longTermDebt"`
	DeferredRevenueNonCurrent               *float64     `json:"deferredRevenueNonCurrent"`
	DeferredTaxLiabilitiesNonCurrent        *float64     `json:"deferredTaxLiabilitiesNonCurrent"`
	OtherNonCurrentLiabilities              *float64     `json:"otherNonCurrentLiabilities"`
	TotalNonCurrentLiabilities              *float64     `json:"totalNonCurrentLiabilities"`
	OtherLiabilities                        *float64     `json:"otherLiabilities"`
	TotalLiabilities                        *float64     `json:"totalLiabilities"`
	CommonStock                             *float64     `json:"commonStock"`
	RetainedEarnings                        *float64     `json:"retainedEarnings"`
	AccumulatedOtherComprehensiveIncomeLoss *float64     `json:"accumulatedOtherComprehensiveIncomeLoss"`
	TotalStockholdersEquity                 *float64     `json:"totalStockholdersEquity"`
	TotalLiabilitiesAndStockholdersEquity   *float64     `json:"totalLiabilitiesAndStockholdersEquity"`
	TotalInvestments                        *float64     `json:"totalInvestments"`
	TotalDebt                               *float64     `json:"totalDebt"`
	NetDebt                                 *float64     `json:"netDebt"`
	OthertotalStockholdersEquity            *float64     `json:"othertotalStockholdersEquity"`
}

// balanceSheetGrowth is an element of /api/v3/balance-sheet-statement-growth.
type balanceSheetGrowth struct {
	Date                                          string       `json:"date"`
	Symbol                                        *string      `json:"symbol"`
	Period                                        *string      `json:"period"`
	CalendarYear                                  calendarYear `json:"calendarYear"`
	GrowthCashAndCashEquivalents                  *float64     `json:"growthCashAndCashEquivalents"`
	GrowthShortTermInvestments                    *float64     `json:"growthShortTermInvestments"`
	GrowthCashAndShortTermInvestments             *float64     `json:"growthCashAndShortTermInvestments"`
	GrowthNetReceivables                          *float64     `json:"growthNetReceivables"`
	GrowthInventory                               *float64     `json:"growthInventory"`
	GrowthOtherCurrentAssets                      *float64     `json:"growthOtherCurrentAssets"`
	GrowthTotalCurrentAssets                      *float64     `json:"growthTotalCurrentAssets"`
	GrowthPropertyPlantEquipmentNet               *float64     `json:"growthPropertyPlantEquipmentNet"`
	GrowthGoodwill                                *float64     `json:"growthGoodwill"`
	GrowthIntangibleAssets                        *float64     `json:"growthIntangibleAssets"`
	GrowthGoodwillAndIntangibleAssets             *float64     `json:"growthGoodwillAndIntangibleAssets"`
	GrowthLongTermInvestments                     *float64     `json:"growthLongTermInvestments"`
	GrowthTaxAssets                               *float64     `json:"growthTaxAssets"`
	GrowthOtherNonCurrentAssets                   *float64     `json:"growthOtherNonCurrentAssets"`
	GrowthTotalNonCurrentAssets                   *float64     `json:"growthTotalNonCurrentAssets"`
	GrowthOtherAssets                             *float64     `json:"growthOtherAssets"`
	GrowthTotalAssets                             *float64     `json:"growthTotalAssets"`
	GrowthAccountPayables                         *float64     `json:"growthAccountPayables"`
	GrowthShortTermDebt                           *float64     `json:"growthShortTermDebt"`
	GrowthTaxPayables                             *float64     `json:"growthTaxPayables"`
	GrowthDeferredRevenue                         *float64     `json:"growthDeferredRevenue"`
	GrowthOtherCurrentLiabilities                 *float64     `json:"growthOtherCurrentLiabilities"`
	GrowthTotalCurrentLiabilities                 *float64     `json:"growthTotalCurrentLiabilities"`
	GrowthLongTermDebt                            *float64     `json:"growthLongTermDebt"`
	GrowthDeferredRevenueNonCurrent               *float64     `json:"growthDeferredRevenueNonCurrent"`
	GrowthDeferredTaxLiabilitiesNonCurrent        *float64     `json:"growthDeferredTaxLiabilitiesNonCurrent"`
	GrowthOtherNonCurrentLiabilities              *float64     `json:"growthOtherNonCurrentLiabilities"`
	GrowthTotalNonCurrentLiabilities              *float64     `json:"growthTotalNonCurrentLiabilities"`
	GrowthOtherLiabilities                        *float64     `json:"growthOtherLiabilities"`
	GrowthTotalLiabilities                        *float64     `json:"growthTotalLiabilities"`
	GrowthCommonStock                             *float64     `json:"growthCommonStock"`
	GrowthRetainedEarnings                        *float64     `json:"growthRetainedEarnings"`
	GrowthAccumulatedOtherComprehensiveIncomeLoss *float64     `json:"growthAccumulatedOtherComprehensiveIncomeLoss"`
	GrowthTotalStockholdersEquity                 *float64     `json:"growthTotalStockholdersEquity"`
	GrowthTotalLiabilitiesAndStockholdersEquity   *float64     `json:"growthTotalLiabilitiesAndStockholdersEquity"`
	GrowthTotalInvestments                        *float64     `json:"growthTotalInvestments"`
	GrowthTotalDebt                               *float64     `json:"growthTotalDebt"`
	GrowthNetDebt                                 *float64     `json:"growthNetDebt"`
	GrowthOthertotalStockholdersEquity            *float64     `json:"growthOthertotalStockholdersEquity"`
}

// cashFlow is an element of /api/v3/cash-flow-statement.
type cashFlow struct {
	Date                                     string       `json:"date"`
	Symbol                                   *string      `json:"symbol"`
	Period                                   *string      `json:"period"`
	CalendarYear                             calendarYear `json:"calendarYear"`
	Link                                     *string      `json:"link"`
	FinalLink                                *string      `json:"finalLink"`
	NetIncome                                *float64     `json:"netIncome"`
	DepreciationAndAmortization              *float64     `json:"depreciationAndAmortization"`
	DeferredIncomeTax                        *float64     `json:"deferredIncomeTax"`
	StockBasedCompensation                   *float64     `json:"stockBasedCompensation"`
	ChangeInWorkingCapital                   *float64     `json:"changeInWorkingCapital"`
	AccountsReceivables                      *float64     `json:"accountsReceivables"`
	Inventory                                *float64     `json:"inventory"`
	AccountsPayables                         *float64     `json:"accountsPayables"`
	OtherWorkingCapital                      *float64     `json:"otherWorkingCapital"`
	OtherNonCashItems                        *float64     `json:"otherNonCashItems"`
	NetCashProvidedByOperatingActivities     *float64     `json:"netCashProvidedByOperatingActivities"`
	OperatingCashFlow                        *float64     `json:"operatingCashFlow"`
	InvestmentsInPropertyPlantAndEquipment   *float64     `json:"investmentsInPropertyPlantAndEquipment"`
	AcquisitionsNet                          *float64     `json:"acquisitionsNet"`
	PurchasesOfInvestments                   *float64     `json:"purchasesOfInvestments"`
	SalesMaturitiesOfInvestments             *float64     `json:"salesMaturitiesOfInvestments"`
	OtherInvestingActivites                  *float64     `json:"otherInvestingActivites"`
	NetCashUsedForInvestingActivites         *float64     `json:"netCashUsedForInvestingActivites"`
	CapitalExpenditure                       *float64     `json:"capitalExpenditure"`
	DebtRepayment                            *float64     `json:"debtRepayment"`
	CommonStockIssued                        *float64     `json:"commonStockIssued"`
	CommonStockRepurchased                   *float64     `json:"commonStockRepurchased"`
	DividendsPaid                            *float64     `json:"dividendsPaid"`
	OtherFinancingActivites                  *float64     `json:"otherFinancingActivites"`
	NetCashUsedProvidedByFinancingActivities *float64     `json:"netCashUsedProvidedByFinancingActivities"`
	EffectOfForexChangesOnCash               *float64     `json:"effectOfForexChangesOnCash"`
	NetChangeInCash                          *float64     `json:"netChangeInCash"`
	CashAtBeginningOfPeriod                  *float64     `json:"cashAtBeginningOfPeriod"`
	CashAtEndOfPeriod                        *float64     `json:"cashAtEndOfPeriod"`
	FreeCashFlow                             *float64     `json:"freeCashFlow"`
}

// cashFlowGrowth is an element of /api/v3/cash-flow-statement-growth.
type cashFlowGrowth struct {
	Date                                           string       `json:"date"`
	Symbol                                         *string      `json:"symbol"`
	Period                                         *string      `json:"period"`
	CalendarYear                                   calendarYear `json:"calendarYear"`
	GrowthNetIncome                                *float64     `json:"growthNetIncome"`
	GrowthDepreciationAndAmortization              *float64     `json:"growthDepreciationAndAmortization"`
	GrowthDeferredIncomeTax                        *float64     `json:"growthDeferredIncomeTax"`
	GrowthStockBasedCompensation                   *float64     `json:"growthStockBasedCompensation"`
	GrowthChangeInWorkingCapital                   *float64     `json:"growthChangeInWorkingCapital"`
	GrowthAccountsReceivables                      *float64     `json:"growthAccountsReceivables"`
	GrowthInventory                                *float64     `json:"growthInventory"`
	GrowthAccountsPayables                         *float64     `json:"growthAccountsPayables"`
	GrowthOtherWorkingCapital                      *float64     `json:"growthOtherWorkingCapital"`
	GrowthOtherNonCashItems                        *float64     `json:"growthOtherNonCashItems"`
	GrowthNetCashProvidedByOperatingActivites      *float64     `json:"growthNetCashProvidedByOperatingActivites"`
	GrowthOperatingCashFlow                        *float64     `json:"growthOperatingCashFlow"`
	GrowthInvestmentsInPropertyPlantAndEquipment   *float64     `json:"growthInvestmentsInPropertyPlantAndEquipment"`
	GrowthAcquisitionsNet                          *float64     `json:"growthAcquisitionsNet"`
	GrowthPurchasesOfInvestments                   *float64     `json:"growthPurchasesOfInvestments"`
	GrowthSalesMaturitiesOfInvestments             *float64     `json:"growthSalesMaturitiesOfInvestments"`
	GrowthOtherInvestingActivites                  *float64     `json:"growthOtherInvestingActivites"`
	GrowthNetCashUsedForInvestingActivites         *float64     `json:"growthNetCashUsedForInvestingActivites"`
	GrowthCapitalExpenditure                       *float64     `json:"growthCapitalExpenditure"`
	GrowthDebtRepayment                            *float64     `json:"growthDebtRepayment"`
	GrowthCommonStockIssued                        *float64     `json:"growthCommonStockIssued"`
	GrowthCommonStockRepurchased                   *float64     `json:"growthCommonStockRepurchased"`
	GrowthDividendsPaid                            *float64     `json:"growthDividendsPaid"`
	GrowthOtherFinancingActivites                  *float64     `json:"growthOtherFinancingActivites"`
	GrowthNetCashUsedProvidedByFinancingActivities *float64     `json:"growthNetCashUsedProvidedByFinancingActivities"`
	GrowthEffectOfForexChangesOnCash               *float64     `json:"growthEffectOfForexChangesOnCash"`
	GrowthNetChangeInCash                          *float64     `json:"growthNetChangeInCash"`
	GrowthCashAtBeginningOfPeriod                  *float64     `json:"growthCashAtBeginningOfPeriod"`
	GrowthCashAtEndOfPeriod                        *float64     `json:"growthCashAtEndOfPeriod"`
	GrowthFreeCashFlow                             *float64     `json:"growthFreeCashFlow"`
}

// keyMetrics is an element of /api/v3/key-metrics.
type keyMetrics struct {
	Date                                   string       `json:"date"`
	Symbol                                 *string      `json:"symbol"`
	Period                                 *string      `json:"period"`
	CalendarYear                           calendarYear `json:"calendarYear"`
	MarketCap                              *float64     `json:"marketCap"`
	PeRatio                                *float64     `json:"peRatio"`
	RevenuePerShare                        *float64     `json:"revenuePerShare"`
	CapexPerShare                          *float64     `json:"capexPerShare"`
	NetIncomePerShare                      *float64     `json:"netIncomePerShare"`
	OperatingCashFlowPerShare              *float64     `json:"operatingCashFlowPerShare"`
	FreeCashFlowPerShare                   *float64     `json:"freeCashFlowPerShare"`
	CashPerShare                           *float64     `json:"cashPerShare"`
	BookValuePerShare                      *float64     `json:"bookValuePerShare"`
	TangibleBookValuePerShare              *float64     `json:"tangibleBookValuePerShare"`
	ShareholdersEquityPerShare             *float64     `json:"shareholdersEquityPerShare"`
	InterestDebtPerShare                   *float64     `json:"interestDebtPerShare"`
	PriceToSalesRatio                      *float64     `json:"priceToSalesRatio"`
	Pocfratio                              *float64     `json:"pocfratio"`
	PfcfRatio                              *float64     `json:"pfcfRatio"`
	PbRatio                                *float64     `json:"pbRatio"`
	PtbRatio                               *float64     `json:"ptbRatio"`
	EvToSales                              *float64     `json:"evToSales"`
	EnterpriseValueOverEBITDA              *float64     `json:"enterpriseValueOverEBITDA"`
	EvToOperatingCashFlow                  *float64     `json:"evToOperatingCashFlow"`
	EvToFreeCashFlow                       *float64     `json:"evToFreeCashFlow"`
	EarningsYield                          *float64     `json:"earningsYield"`
	FreeCashFlowYield                      *float64     `json:"freeCashFlowYield"`
	DebtToEquity                           *float64     `json:"debtToEquity"`
	DebtToAssets                           *float64     `json:"debtToAssets"`
	NetDebtToEBITDA                        *float64     `json:"netDebtToEBITDA"`
	CurrentRatio                           *float64     `json:"currentRatio"`
	InterestCoverage                       *float64     `json:"interestCoverage"`
	IncomeQuality                          *float64     `json:"incomeQuality"`
	PayoutRatio                            *float64     `json:"payoutRatio"`
	SalesGeneralAndAdministrativeToRevenue *float64     `json:"salesGeneralAndAdministrativeToRevenue"`
	ResearchAndDdevelopementToRevenue      *float64     `json:"researchAndDdevelopementToRevenue"`
	IntangiblesToTotalAssets               *float64     `json:"intangiblesToTotalAssets"`
	CapexToOperatingCashFlow               *float64     `json:"capexToOperatingCashFlow"`
	CapexToRevenue                         *float64     `json:"capexToRevenue"`
	CapexToDepreciation                    *float64     `json:"capexToDepreciation"`
	StockBasedCompensationToRevenue        *float64     `json:"stockBasedCompensationToRevenue"`
	WorkingCapital                         *float64     `json:"workingCapital"`
	TangibleAssetValue                     *float64     `json:"tangibleAssetValue"`
	NetCurrentAssetValue                   *float64     `json:"netCurrentAssetValue"`
	EnterpriseValue                        *float64     `json:"enterpriseValue"`
	InvestedCapital                        *float64     `json:"investedCapital"`
	AverageReceivables                     *float64     `json:"averageReceivables"`
	AveragePayables                        *float64     `json:"averagePayables"`
	AverageInventory                       *float64     `json:"averageInventory"`
	DaysSalesOutstanding                   *float64     `json:"daysSalesOutstanding"`
	DaysPayablesOutstanding                *float64     `json:"daysPayablesOutstanding"`
	DaysOfInventoryOnHand                  *float64     `json:"daysOfInventoryOnHand"`
	ReceivablesTurnover                    *float64     `json:"receivablesTurnover"`
	PayablesTurnover                       *float64     `json:"payablesTurnover"`
	InventoryTurnover                      *float64     `json:"inventoryTurnover"`
	Roe                                    *float64     `json:"roe"`
	Roic                                   *float64     `json:"roic"`
	ReturnOnTangibleAssets                 *float64     `json:"returnOnTangibleAssets"`
	DividendYield                          *float64     `json:"dividendYield"`
	GrahamNumber                           *float64     `json:"grahamNumber"`
	GrahamNetNet                           *float64     `json:"grahamNetNet"`
}
