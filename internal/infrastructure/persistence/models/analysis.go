package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockie/backend/internal/domain/analysis"
)

// AnalysisModel is the persistence model for the Analysis domain entity.
type AnalysisModel struct {
	Ticker         string                  `gorm:"type:varchar(10);primaryKey"`
	Prompt         string                  `gorm:"type:text;not null"`
	Response       string                  `gorm:"type:text;not null"`
	Sector         analysis.Sector         `gorm:"type:varchar(32);not null;default:'';index"`
	MarketCap      decimal.Decimal         `gorm:"type:decimal(24,2);not null;index"`
	Recommendation analysis.Recommendation `gorm:"type:varchar(16);not null;default:'hold';index"`
	CreatedAt      time.Time               `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AnalysisModel) TableName() string {
	return "analyses"
}

// ToDomain converts the persistence model to a domain Analysis entity.
func (m *AnalysisModel) ToDomain() *analysis.Analysis {
	return &analysis.Analysis{
		Ticker:         m.Ticker,
		Prompt:         m.Prompt,
		Response:       m.Response,
		Sector:         m.Sector,
		MarketCap:      m.MarketCap,
		Recommendation: m.Recommendation,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

// FromDomain populates the persistence model from a domain Analysis entity.
func (m *AnalysisModel) FromDomain(a *analysis.Analysis) {
	m.Ticker = a.Ticker
	m.Prompt = a.Prompt
	m.Response = a.Response
	m.Sector = a.Sector
	m.MarketCap = a.MarketCap
	m.Recommendation = a.Recommendation
	m.CreatedAt = a.CreatedAt
}

// AnalysisModelFromDomain creates a new persistence model from a domain Analysis entity.
func AnalysisModelFromDomain(a *analysis.Analysis) *AnalysisModel {
	m := &AnalysisModel{}
	m.FromDomain(a)
	return m
}
