package supplier

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
)

// ShipmentStatus representa o estado de uma remessa
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "Pending"
	StatusLate      ShipmentStatus = "Late"
	StatusArrived   ShipmentStatus = "Arrived"
	StatusCancelled ShipmentStatus = "Cancelled"
)

// Shipment representa uma remessa esperada de um fornecedor
type Shipment struct {
	ID               string         `json:"id"`
	OrgID            string         `json:"org_id"`
	SupplierID       string         `json:"supplier_id"`
	SupplierName     string         `json:"supplier_name,omitempty"`
	StockItemID      string         `json:"stock_item_id,omitempty"` // Item creditado no recebimento
	ExpectedQuantity int            `json:"expected_quantity"`
	ExpectedDate     time.Time      `json:"expected_date"`
	Notes            string         `json:"notes,omitempty"`
	Status           ShipmentStatus `json:"status"`
	ReceivedQuantity *int           `json:"received_quantity"`
	DamagedQuantity  *int           `json:"damaged_quantity"`
	ReceivedDate     *time.Time     `json:"received_date"`
	Score            *float64       `json:"score"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// NewShipment cria uma remessa pendente. Quantidade esperada zero é rejeitada aqui
// para que a nota nunca precise dividir por zero.
func NewShipment(orgID, supplierID string, expectedQuantity int, expectedDate time.Time, notes, stockItemID string) (*Shipment, error) {
	if supplierID == "" {
		return nil, apperr.Validation("fornecedor não informado")
	}
	if expectedQuantity <= 0 {
		return nil, apperr.InvalidQuantity("quantidade esperada deve ser maior que zero")
	}
	if expectedDate.IsZero() {
		return nil, apperr.Validation("data esperada não informada")
	}

	now := time.Now()
	return &Shipment{
		ID:               uuid.New().String(),
		OrgID:            orgID,
		SupplierID:       supplierID,
		StockItemID:      strings.TrimSpace(stockItemID),
		ExpectedQuantity: expectedQuantity,
		ExpectedDate:     expectedDate,
		Notes:            strings.TrimSpace(notes),
		Status:           StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// IsRated indica se a remessa já recebeu nota
func (s *Shipment) IsRated() bool {
	return s.Score != nil
}

// GoodQuantity retorna a quantidade recebida sem avarias da última avaliação
func (s *Shipment) GoodQuantity() int {
	if s.ReceivedQuantity == nil {
		return 0
	}
	damaged := 0
	if s.DamagedQuantity != nil {
		damaged = *s.DamagedQuantity
	}
	return *s.ReceivedQuantity - damaged
}

// MarkArrived marca a remessa como recebida. Em remessa já recebida não faz nada e retorna false.
func (s *Shipment) MarkArrived(at time.Time) (bool, error) {
	switch s.Status {
	case StatusArrived:
		return false, nil
	case StatusCancelled:
		return false, apperr.InvalidState("remessa cancelada não pode ser recebida")
	}

	s.Status = StatusArrived
	if s.ReceivedDate == nil {
		received := at
		s.ReceivedDate = &received
	}
	s.UpdatedAt = at
	return true, nil
}

// Rate avalia a remessa recebida. Uma nova avaliação substitui a anterior.
func (s *Shipment) Rate(receivedQuantity, damagedQuantity int, receivedDate time.Time) error {
	if s.Status != StatusArrived {
		return apperr.InvalidState("remessa precisa estar recebida para ser avaliada (status atual: %s)", s.Status)
	}

	score, err := Score(s.ExpectedQuantity, receivedQuantity, damagedQuantity)
	if err != nil {
		return err
	}

	received, damaged, date := receivedQuantity, damagedQuantity, receivedDate
	s.ReceivedQuantity = &received
	s.DamagedQuantity = &damaged
	s.ReceivedDate = &date
	s.Score = &score
	s.UpdatedAt = time.Now()
	return nil
}

// Cancel cancela uma remessa ainda não recebida
func (s *Shipment) Cancel(at time.Time) error {
	switch s.Status {
	case StatusCancelled:
		return nil
	case StatusArrived:
		return apperr.InvalidState("remessa recebida não pode ser cancelada")
	}

	s.Status = StatusCancelled
	s.UpdatedAt = at
	return nil
}

// MarkLate marca como atrasada a remessa pendente cuja data esperada já passou
func (s *Shipment) MarkLate(now time.Time) bool {
	if s.Status != StatusPending || !s.ExpectedDate.Before(startOfDay(now)) {
		return false
	}
	s.Status = StatusLate
	s.UpdatedAt = now
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
