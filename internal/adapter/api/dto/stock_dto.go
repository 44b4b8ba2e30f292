package dto

import (
	"time"

	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// StockItemRequest representa os dados para cadastro de um item de estoque
type StockItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	CostPrice    decimal.Decimal `json:"cost_price" swaggertype:"string" example:"8.00"`
	Quantity     int             `json:"quantity" binding:"gte=0"`
	MinThreshold *int            `json:"min_threshold,omitempty"`
	MaxCapacity  *int            `json:"max_capacity,omitempty"`
}

// Attributes converte a requisição aplicando os limites padrão
func (r StockItemRequest) Attributes() stock.Attributes {
	attrs := stock.Attributes{
		Name:         r.Name,
		Category:     r.Category,
		Price:        r.Price,
		CostPrice:    r.CostPrice,
		MinThreshold: stock.DefaultMinThreshold,
		MaxCapacity:  stock.DefaultMaxCapacity,
	}
	if r.MinThreshold != nil {
		attrs.MinThreshold = *r.MinThreshold
	}
	if r.MaxCapacity != nil {
		attrs.MaxCapacity = *r.MaxCapacity
	}
	return attrs
}

// StockItemUpdateRequest representa uma atualização parcial do item
type StockItemUpdateRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty" swaggertype:"string"`
	Quantity     *int             `json:"quantity,omitempty"`
	MinThreshold *int             `json:"min_threshold,omitempty"`
	MaxCapacity  *int             `json:"max_capacity,omitempty"`
}

// Patch converte a requisição em stock.Patch
func (r StockItemUpdateRequest) Patch() stock.Patch {
	return stock.Patch{
		Name:         r.Name,
		Category:     r.Category,
		Price:        r.Price,
		CostPrice:    r.CostPrice,
		MinThreshold: r.MinThreshold,
		MaxCapacity:  r.MaxCapacity,
	}
}

// StockAdjustRequest representa um ajuste manual de quantidade
type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// StockItemResponse representa um item de estoque na API
type StockItemResponse struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price" swaggertype:"string"`
	CostPrice    decimal.Decimal `json:"cost_price" swaggertype:"string"`
	MinThreshold int             `json:"min_threshold"`
	MaxCapacity  int             `json:"max_capacity"`
	Status       stock.Status    `json:"status"`
	Value        decimal.Decimal `json:"value" swaggertype:"string"`
	Cost         decimal.Decimal `json:"cost" swaggertype:"string"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToStockItemResponse converte um item de domínio para resposta
func ToStockItemResponse(i *stock.Item) StockItemResponse {
	v := i.Valuation()
	return StockItemResponse{
		ID:           i.ID,
		OrgID:        i.OrgID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Price:        i.Price,
		CostPrice:    i.CostPrice,
		MinThreshold: i.MinThreshold,
		MaxCapacity:  i.MaxCapacity,
		Status:       i.Status(),
		Value:        v.Value,
		Cost:         v.Cost,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ToStockItemResponses converte uma lista de itens
func ToStockItemResponses(items []*stock.Item) []StockItemResponse {
	result := make([]StockItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, ToStockItemResponse(i))
	}
	return result
}
