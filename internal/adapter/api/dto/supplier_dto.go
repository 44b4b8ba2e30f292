package dto

import (
	"time"

	"github.com/hugohenrick/bizit/internal/domain/supplier"
)

// SupplierRequest representa os dados de cadastro ou atualização de fornecedor
type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Contact extrai os dados de contato
func (r SupplierRequest) Contact() supplier.Contact {
	return supplier.Contact{Phone: r.Phone, Email: r.Email, Address: r.Address}
}

// ShipmentRequest representa os dados de uma nova remessa
type ShipmentRequest struct {
	SupplierID       string `json:"supplier_id" binding:"required"`
	StockItemID      string `json:"stock_item_id,omitempty"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ExpectedDate     string `json:"expected_date" binding:"required" example:"2026-05-20"`
	Notes            string `json:"notes,omitempty"`
}

// RatingRequest representa a conferência de uma remessa recebida
type RatingRequest struct {
	ReceivedQuantity *int   `json:"received_quantity" binding:"required"`
	DamagedQuantity  int    `json:"damaged_quantity"`
	ReceivedDate     string `json:"received_date,omitempty" example:"2026-05-21"`
}

// ArriveRequest permite avaliar a remessa no mesmo passo do recebimento
type ArriveRequest struct {
	ReceivedQuantity *int   `json:"received_quantity,omitempty"`
	DamagedQuantity  int    `json:"damaged_quantity"`
	ReceivedDate     string `json:"received_date,omitempty"`
}

// SupplierScoresResponse representa as notas agregadas dos fornecedores
type SupplierScoresResponse struct {
	Suppliers   []supplier.SupplierScore `json:"suppliers"`
	GeneratedAt time.Time                `json:"generated_at"`
}
