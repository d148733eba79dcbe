package market

import (
	"errors"
	"testing"

	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lowercase", "aapl", "AAPL", false},
		{"surrounding spaces", "  msft ", "MSFT", false},
		{"class share", "brk.b", "BRK.B", false},
		{"dash", "BF-B", "BF-B", false},
		{"index", "^GSPC", "^GSPC", false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"too long", "ABCDEFGHIJK", "", true},
		{"path traversal", "../etc", "", true},
		{"slash", "AAPL/1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSymbol(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, shared.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSearchQuery(t *testing.T) {
	q, err := NormalizeSearchQuery("  apple ")
	assert.NoError(t, err)
	assert.Equal(t, "apple", q)

	_, err = NormalizeSearchQuery("")
	assert.Error(t, err)

	long := make([]byte, MaxSearchQueryLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = NormalizeSearchQuery(string(long))
	assert.Error(t, err)
}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope([]int{1})
	assert.Equal(t, ProviderFMP, env.Provider)
	assert.Nil(t, env.Warnings)
	assert.Nil(t, env.Chart)
	if assert.NotNil(t, env.Extra) {
		assert.NotNil(t, env.Extra.Metadata)
		assert.Empty(t, env.Extra.Metadata)
	}

	search := NewSearchEnvelope([]int{})
	assert.Nil(t, search.Extra)
}
