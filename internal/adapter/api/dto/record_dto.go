package dto

// SaleRequest representa os dados de uma venda
type SaleRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// LossRequest representa os dados de uma perda
type LossRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason" binding:"required" example:"Damaged"`
	Notes       string `json:"notes,omitempty"`
}
