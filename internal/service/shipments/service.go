package shipments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// Rating contém as quantidades conferidas no recebimento
type Rating struct {
	ReceivedQuantity int
	DamagedQuantity  int
	ReceivedDate     *time.Time // padrão: agora
}

// ShipmentInput contém os dados de uma nova remessa
type ShipmentInput struct {
	SupplierID       string
	StockItemID      string
	ExpectedQuantity int
	ExpectedDate     time.Time
	Notes            string
}

// Service acompanha fornecedores e o ciclo de vida das remessas
type Service struct {
	ledger    *ledger.Ledger
	suppliers supplier.Repository
	items     stock.Repository
	logger    logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(l *ledger.Ledger, suppliers supplier.Repository, items stock.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{ledger: l, suppliers: suppliers, items: items, logger: log}
}

// CreateSupplier cadastra um fornecedor na organização
func (s *Service) CreateSupplier(ctx context.Context, scope access.Scope, name string, contact supplier.Contact) (*supplier.Supplier, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "cadastrar fornecedor"); err != nil {
		return nil, err
	}

	sup, err := supplier.NewSupplier(scope.OrgID, name, contact)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.CreateSupplier(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Info("fornecedor cadastrado", "supplier_id", sup.ID, "org_id", sup.OrgID)
	return sup, nil
}

// GetSupplier busca um fornecedor da organização
func (s *Service) GetSupplier(ctx context.Context, scope access.Scope, id string) (*supplier.Supplier, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "consultar fornecedor"); err != nil {
		return nil, err
	}
	sup, err := s.suppliers.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.Owns(sup.OrgID); err != nil {
		return nil, err
	}
	return sup, nil
}

// ListSuppliers lista os fornecedores da organização
func (s *Service) ListSuppliers(ctx context.Context, scope access.Scope) ([]*supplier.Supplier, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "consultar fornecedores"); err != nil {
		return nil, err
	}
	return s.suppliers.ListSuppliers(ctx, scope.OrgID)
}

// UpdateSupplier atualiza nome e contato do fornecedor
func (s *Service) UpdateSupplier(ctx context.Context, scope access.Scope, id, name string, contact supplier.Contact) (*supplier.Supplier, error) {
	sup, err := s.GetSupplier(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := sup.Update(name, contact); err != nil {
		return nil, err
	}
	if err := s.suppliers.UpdateSupplier(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// CreateShipment registra uma remessa pendente. Fornecedor e item precisam ser da mesma organização.
func (s *Service) CreateShipment(ctx context.Context, scope access.Scope, in ShipmentInput) (*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "cadastrar remessa"); err != nil {
		return nil, err
	}

	shipment, err := supplier.NewShipment(scope.OrgID, in.SupplierID, in.ExpectedQuantity, in.ExpectedDate, in.Notes, in.StockItemID)
	if err != nil {
		return nil, err
	}

	sup, err := s.GetSupplier(ctx, scope, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if shipment.StockItemID != "" {
		item, err := s.items.FindByID(ctx, shipment.StockItemID)
		if err != nil {
			return nil, err
		}
		if err := scope.Owns(item.OrgID); err != nil {
			return nil, err
		}
	}

	if err := s.suppliers.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}
	shipment.SupplierName = sup.Name

	s.logger.Info("remessa cadastrada", "shipment_id", shipment.ID, "supplier_id", sup.ID, "expected_quantity", shipment.ExpectedQuantity)
	return shipment, nil
}

// GetShipment busca uma remessa da organização
func (s *Service) GetShipment(ctx context.Context, scope access.Scope, id string) (*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "consultar remessa"); err != nil {
		return nil, err
	}
	shipment, err := s.suppliers.FindShipmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.Owns(shipment.OrgID); err != nil {
		return nil, err
	}
	return shipment, nil
}

// ListShipments lista as remessas da organização pela data esperada
func (s *Service) ListShipments(ctx context.Context, scope access.Scope) ([]*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "consultar remessas"); err != nil {
		return nil, err
	}
	return s.suppliers.ListShipments(ctx, scope.OrgID)
}

// MarkArrived marca a remessa como recebida. Com rating, a avaliação acontece na mesma transação.
func (s *Service) MarkArrived(ctx context.Context, scope access.Scope, id string, rating *Rating) (*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "receber remessa"); err != nil {
		return nil, err
	}
	if rating != nil {
		if err := scope.Require(scope.Actor.CanRateShipments(), "avaliar remessa"); err != nil {
			return nil, err
		}
	}

	return s.update(ctx, scope, id, func(tx ledger.Tx, shipment *supplier.Shipment) error {
		now := time.Now()
		if rating != nil && rating.ReceivedDate != nil {
			now = *rating.ReceivedDate
		}
		if _, err := shipment.MarkArrived(now); err != nil {
			return err
		}
		if rating == nil {
			return nil
		}
		return s.rate(ctx, tx, scope, shipment, *rating)
	})
}

// RateShipment avalia uma remessa recebida. Nova avaliação substitui a anterior.
func (s *Service) RateShipment(ctx context.Context, scope access.Scope, id string, rating Rating) (*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanRateShipments(), "avaliar remessa"); err != nil {
		return nil, err
	}

	return s.update(ctx, scope, id, func(tx ledger.Tx, shipment *supplier.Shipment) error {
		return s.rate(ctx, tx, scope, shipment, rating)
	})
}

// CancelShipment cancela uma remessa pendente ou atrasada
func (s *Service) CancelShipment(ctx context.Context, scope access.Scope, id string) (*supplier.Shipment, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "cancelar remessa"); err != nil {
		return nil, err
	}

	return s.update(ctx, scope, id, func(tx ledger.Tx, shipment *supplier.Shipment) error {
		return shipment.Cancel(time.Now())
	})
}

// FlagLate marca como atrasadas as remessas pendentes com data esperada anterior ao dia de now
func (s *Service) FlagLate(ctx context.Context, now time.Time) (int, error) {
	y, m, d := now.Date()
	marked, err := s.suppliers.MarkLate(ctx, time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar remessas atrasadas: %w", err)
	}
	if marked > 0 {
		s.logger.Info("remessas marcadas como atrasadas", "count", marked)
	}
	return marked, nil
}

// SupplierScores calcula a nota média dos fornecedores com remessas avaliadas
func (s *Service) SupplierScores(ctx context.Context, scope access.Scope) ([]supplier.SupplierScore, error) {
	if err := scope.Require(scope.Actor.CanManageSuppliers(), "consultar notas de fornecedores"); err != nil {
		return nil, err
	}
	shipments, err := s.suppliers.ListShipments(ctx, scope.OrgID)
	if err != nil {
		return nil, err
	}
	return supplier.Aggregate(shipments), nil
}

// update trava a remessa, confere a organização e grava o resultado de fn
func (s *Service) update(ctx context.Context, scope access.Scope, id string, fn func(tx ledger.Tx, shipment *supplier.Shipment) error) (*supplier.Shipment, error) {
	var result *supplier.Shipment
	err := s.ledger.Run(ctx, func(tx ledger.Tx) error {
		shipment, err := tx.GetShipmentForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := scope.Owns(shipment.OrgID); err != nil {
			return err
		}
		if err := fn(tx, shipment); err != nil {
			return err
		}
		if err := tx.SaveShipment(ctx, shipment); err != nil {
			return err
		}
		result = shipment
		return nil
	})
	if err != nil {
		s.logger.Debug("alteração de remessa rejeitada", "shipment_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("remessa atualizada", "shipment_id", result.ID, "status", result.Status)
	return result, nil
}

// rate avalia a remessa e credita no estoque a variação da quantidade boa. Um estorno nunca
// passa do saldo do item: a avaliação é sempre gravada.
func (s *Service) rate(ctx context.Context, tx ledger.Tx, scope access.Scope, shipment *supplier.Shipment, rating Rating) error {
	previousGood := 0
	if shipment.IsRated() {
		previousGood = shipment.GoodQuantity()
	}

	receivedDate := time.Now()
	if rating.ReceivedDate != nil {
		receivedDate = *rating.ReceivedDate
	}
	if err := shipment.Rate(rating.ReceivedQuantity, rating.DamagedQuantity, receivedDate); err != nil {
		return err
	}

	if shipment.StockItemID == "" {
		return nil
	}
	delta := shipment.GoodQuantity() - previousGood
	if delta < 0 {
		item, err := tx.GetItemForUpdate(ctx, shipment.StockItemID)
		if errors.Is(err, apperr.ErrNotFound) {
			return s.unlink(shipment)
		}
		if err != nil {
			return err
		}
		if -delta > item.Quantity {
			s.logger.Warn("estorno de recebimento limitado ao estoque disponível",
				"shipment_id", shipment.ID, "item_id", item.ID, "requested", -delta, "available", item.Quantity)
			delta = -item.Quantity
		}
	}
	if delta == 0 {
		return nil
	}
	_, err := s.ledger.Apply(ctx, tx, scope, shipment.StockItemID, delta, stock.ReasonReceipt)
	if errors.Is(err, apperr.ErrNotFound) {
		return s.unlink(shipment)
	}
	return err
}

// unlink desfaz o vínculo com um item que não existe mais; a avaliação segue sem crédito
func (s *Service) unlink(shipment *supplier.Shipment) error {
	s.logger.Warn("item da remessa não existe mais, avaliação sem crédito de estoque",
		"shipment_id", shipment.ID, "item_id", shipment.StockItemID)
	shipment.StockItemID = ""
	return nil
}
