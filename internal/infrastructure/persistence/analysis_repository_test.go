package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/shared"
)

var analysisColumns = []string{"ticker", "prompt", "response", "sector", "market_cap", "recommendation", "created_at"}

func newMockAnalysisRepository(t *testing.T) (*GormAnalysisRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockGormDB(t)
	return NewGormAnalysisRepository(gormDB), mock, mockDB
}

func TestGormAnalysisRepository_FindByTicker(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("finds existing analysis", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows(analysisColumns).
			AddRow("AAPL", "Company: AAPL", "## Report", "TECHNOLOGY", "3400000000000", "buy", created)

		mock.ExpectQuery(`SELECT \* FROM "analyses" WHERE ticker = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("AAPL", 1).
			WillReturnRows(rows)

		a, err := repo.FindByTicker(context.Background(), "aapl")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", a.Ticker)
		assert.Equal(t, analysis.SectorTechnology, a.Sector)
		assert.Equal(t, analysis.RecommendationBuy, a.Recommendation)
		assert.True(t, decimal.NewFromInt(3_400_000_000_000).Equal(a.MarketCap))
		assert.Equal(t, created, a.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "analyses" WHERE ticker = \$1`).
			WithArgs("ZZZZ", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		a, err := repo.FindByTicker(context.Background(), "ZZZZ")

		assert.Nil(t, a)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes through database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "analyses"`).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByTicker(context.Background(), "AAPL")

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestGormAnalysisRepository_Upsert(t *testing.T) {
	t.Run("inserts with on conflict update", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		a, err := analysis.NewAnalysis("MSFT", "prompt", "report", analysis.SectorTechnology,
			decimal.NewFromInt(3_000_000_000_000), analysis.RecommendationStrongBuy, time.Now())
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "analyses" .* ON CONFLICT \("ticker"\) DO UPDATE SET "prompt"="excluded"."prompt",.*"created_at"="excluded"."created_at"`).
			WithArgs("MSFT", "prompt", "report", analysis.SectorTechnology, sqlmock.AnyArg(), analysis.RecommendationStrongBuy, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Upsert(context.Background(), a))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects nil analysis", func(t *testing.T) {
		repo, _, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		err := repo.Upsert(context.Background(), nil)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestGormAnalysisRepository_Search(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("applies filters and paging", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		minCap := decimal.NewFromInt(500_000_000)
		filter := analysis.ScreenerFilter{
			Sector:       analysis.SectorTechnology,
			MarketCapMin: &minCap,
			Page:         2,
			Limit:        10,
		}

		mock.ExpectQuery(`SELECT count\(\*\) FROM "analyses" WHERE sector = \$1 AND market_cap >= \$2`).
			WithArgs(analysis.SectorTechnology, minCap).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

		rows := sqlmock.NewRows(analysisColumns)
		for i := 0; i < 10; i++ {
			rows.AddRow("T"+string(rune('A'+i)), "p", "r", "TECHNOLOGY", "600000000", "hold", created.Add(-time.Duration(i)*time.Hour))
		}
		mock.ExpectQuery(`SELECT \* FROM "analyses" WHERE sector = \$1 AND market_cap >= \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs(analysis.SectorTechnology, minCap, 10, 10).
			WillReturnRows(rows)

		page, err := repo.Search(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, "TA", page.Items[0].Ticker)
		assert.Equal(t, int64(25), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escapes symbol pattern", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "analyses" WHERE UPPER\(ticker\) LIKE \$1 ESCAPE .* AND recommendation = \$2`).
			WithArgs(`%BRK\_%`, analysis.RecommendationSell).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		page, err := repo.Search(context.Background(), analysis.ScreenerFilter{Symbol: "brk_", Recommendation: "SELL"})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, analysis.DefaultPageSize, page.Pagination.Limit)
		assert.Equal(t, 0, page.Pagination.TotalPages)
		assert.False(t, page.Pagination.HasNext)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid filter without querying", func(t *testing.T) {
		repo, mock, mockDB := newMockAnalysisRepository(t)
		defer mockDB.Close()

		_, err := repo.Search(context.Background(), analysis.ScreenerFilter{Limit: 500})

		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `A\%B\_C\\`, escapeLikePattern(`A%B_C\`))
	assert.Equal(t, "AAPL", escapeLikePattern("AAPL"))
}
