package loss

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReason(t *testing.T) {
	r, err := ParseReason("expired")
	require.NoError(t, err)
	assert.Equal(t, ReasonExpired, r)

	_, err = ParseReason("lost at sea")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestNewRecordValuesAtCost(t *testing.T) {
	item := &stock.Item{
		ID:        "item-1",
		OrgID:     "org-1",
		Name:      "Leite 1L",
		Price:     decimal.RequireFromString("6.99"),
		CostPrice: decimal.RequireFromString("4.10"),
	}

	rec, err := NewRecord(item, 3, ReasonDamaged, "  caixa rasgada ", "u1", time.Now())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.10").Equal(rec.CostAtLoss))
	assert.True(t, decimal.RequireFromString("12.30").Equal(rec.TotalLoss))
	assert.Equal(t, "caixa rasgada", rec.Notes)

	_, err = NewRecord(item, 0, ReasonDamaged, "", "u1", time.Now())
	assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))
}
