package stock

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAttributes() Attributes {
	return Attributes{
		Name:         "Arroz 5kg",
		Category:     "mercearia",
		Price:        decimal.RequireFromString("25.90"),
		CostPrice:    decimal.RequireFromString("18.40"),
		MinThreshold: DefaultMinThreshold,
		MaxCapacity:  DefaultMaxCapacity,
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusLow, Classify(5, 10, 100))
	assert.Equal(t, StatusLow, Classify(10, 10, 100))
	assert.Equal(t, StatusHigh, Classify(90, 10, 100))
	assert.Equal(t, StatusHigh, Classify(80, 10, 100))
	assert.Equal(t, StatusMedium, Classify(79, 10, 100))
	assert.Equal(t, StatusMedium, Classify(50, 10, 100))
	assert.Equal(t, StatusLow, Classify(0, 0, 0))
	assert.Equal(t, StatusHigh, Classify(3, 0, 0))
}

func TestValuate(t *testing.T) {
	item, err := NewItem("org-1", validAttributes())
	require.NoError(t, err)
	item.Quantity = 4

	v := item.Valuation()
	assert.True(t, decimal.RequireFromString("103.60").Equal(v.Value))
	assert.True(t, decimal.RequireFromString("73.60").Equal(v.Cost))
}

func TestNewItemValidation(t *testing.T) {
	mutations := map[string]func(a *Attributes){
		"nome vazio":          func(a *Attributes) { a.Name = "  " },
		"categoria vazia":     func(a *Attributes) { a.Category = "" },
		"preço negativo":      func(a *Attributes) { a.Price = decimal.NewFromInt(-1) },
		"custo negativo":      func(a *Attributes) { a.CostPrice = decimal.NewFromInt(-1) },
		"preço com 3 casas":   func(a *Attributes) { a.Price = decimal.RequireFromString("0.005") },
		"custo com 3 casas":   func(a *Attributes) { a.CostPrice = decimal.RequireFromString("18.401") },
		"mínimo negativo":     func(a *Attributes) { a.MinThreshold = -1 },
		"capacidade negativa": func(a *Attributes) { a.MaxCapacity = -1; a.MinThreshold = -2 },
		"capacidade < mínimo": func(a *Attributes) { a.MinThreshold = 50; a.MaxCapacity = 40 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			attrs := validAttributes()
			mutate(&attrs)
			_, err := NewItem("org-1", attrs)
			assert.True(t, errors.Is(err, apperr.ErrValidation), "erro: %v", err)
		})
	}
}

func TestApplyDeltaNeverGoesNegative(t *testing.T) {
	item, err := NewItem("org-1", validAttributes())
	require.NoError(t, err)
	item.Quantity = 10

	require.NoError(t, item.ApplyDelta(-10, time.Now()))
	assert.Equal(t, 0, item.Quantity)

	err = item.ApplyDelta(-1, time.Now())
	assert.True(t, errors.Is(err, apperr.ErrInsufficientStock))
	assert.Equal(t, 0, item.Quantity)
}

func TestApplyPatchKeepsItemOnInvalidResult(t *testing.T) {
	item, err := NewItem("org-1", validAttributes())
	require.NoError(t, err)

	capacity := 5
	err = item.ApplyPatch(Patch{MaxCapacity: &capacity})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, DefaultMaxCapacity, item.MaxCapacity)

	price := decimal.RequireFromString("27.50")
	name := "Arroz Tipo 1 5kg"
	require.NoError(t, item.ApplyPatch(Patch{Price: &price, Name: &name}))
	assert.True(t, price.Equal(item.Price))
	assert.Equal(t, name, item.Name)
}

func TestMoneyScale(t *testing.T) {
	attrs := validAttributes()
	attrs.Price = decimal.RequireFromString("25.900")
	_, err := NewItem("org-1", attrs)
	require.NoError(t, err)

	item, err := NewItem("org-1", validAttributes())
	require.NoError(t, err)

	price := decimal.RequireFromString("0.005")
	err = item.ApplyPatch(Patch{Price: &price})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.True(t, decimal.RequireFromString("25.90").Equal(item.Price))
}
