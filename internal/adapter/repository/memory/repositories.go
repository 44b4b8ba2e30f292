package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
)

// StockRepository implementa stock.Repository
type StockRepository struct {
	db *DB
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db *DB) stock.Repository {
	return &StockRepository{db: db}
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (*stock.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.items[id]
	if !ok {
		return nil, apperr.NotFound("item de estoque não encontrado: %s", id)
	}
	return cloneItem(item), nil
}

func (r *StockRepository) ListByOrg(ctx context.Context, orgID string) ([]*stock.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := make([]*stock.Item, 0)
	for _, item := range r.db.items {
		if item.OrgID == orgID {
			items = append(items, cloneItem(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *StockRepository) ListMovements(ctx context.Context, itemID string, limit int) ([]*stock.Movement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := r.db.movements[itemID]
	result := make([]*stock.Movement, 0, len(all))
	for i := len(all) - 1; i >= 0 && (limit <= 0 || len(result) < limit); i-- {
		m := *all[i]
		result = append(result, &m)
	}
	return result, nil
}

// SaleRepository implementa sale.Repository
type SaleRepository struct {
	db *DB
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *DB) sale.Repository {
	return &SaleRepository{db: db}
}

// ListByOrg retorna as vendas da janela, mais recentes primeiro
func (r *SaleRepository) ListByOrg(ctx context.Context, orgID string, window period.Window) ([]*sale.Record, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	records := make([]*sale.Record, 0)
	for _, s := range r.db.sales {
		if s.OrgID == orgID && window.Contains(s.SaleDate) {
			c := *s
			records = append(records, &c)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SaleDate.After(records[j].SaleDate)
	})
	return records, nil
}

// LossRepository implementa loss.Repository
type LossRepository struct {
	db *DB
}

// NewLossRepository cria uma nova instância de LossRepository
func NewLossRepository(db *DB) loss.Repository {
	return &LossRepository{db: db}
}

// ListByOrg retorna as perdas da janela, mais recentes primeiro
func (r *LossRepository) ListByOrg(ctx context.Context, orgID string, window period.Window) ([]*loss.Record, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	records := make([]*loss.Record, 0)
	for _, l := range r.db.losses {
		if l.OrgID == orgID && window.Contains(l.LossDate) {
			c := *l
			records = append(records, &c)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].LossDate.After(records[j].LossDate)
	})
	return records, nil
}

// SupplierRepository implementa supplier.Repository
type SupplierRepository struct {
	db *DB
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *DB) supplier.Repository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, s *supplier.Supplier) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.suppliers[s.ID]; exists {
		return apperr.Validation("fornecedor já existe: %s", s.ID)
	}
	r.db.suppliers[s.ID] = cloneSupplier(s)
	return nil
}

func (r *SupplierRepository) FindSupplierByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.suppliers[id]
	if !ok {
		return nil, apperr.NotFound("fornecedor não encontrado: %s", id)
	}
	return cloneSupplier(s), nil
}

func (r *SupplierRepository) ListSuppliers(ctx context.Context, orgID string) ([]*supplier.Supplier, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]*supplier.Supplier, 0)
	for _, s := range r.db.suppliers {
		if s.OrgID == orgID {
			list = append(list, cloneSupplier(s))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, s *supplier.Supplier) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.suppliers[s.ID]; !ok {
		return apperr.NotFound("fornecedor não encontrado: %s", s.ID)
	}
	r.db.suppliers[s.ID] = cloneSupplier(s)
	return nil
}

func (r *SupplierRepository) CreateShipment(ctx context.Context, s *supplier.Shipment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.shipments[s.ID]; exists {
		return apperr.Validation("remessa já existe: %s", s.ID)
	}
	r.db.shipments[s.ID] = cloneShipment(s)
	return nil
}

func (r *SupplierRepository) FindShipmentByID(ctx context.Context, id string) (*supplier.Shipment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.shipments[id]
	if !ok {
		return nil, apperr.NotFound("remessa não encontrada: %s", id)
	}
	return r.db.withSupplierName(s), nil
}

func (r *SupplierRepository) ListShipments(ctx context.Context, orgID string) ([]*supplier.Shipment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]*supplier.Shipment, 0)
	for _, s := range r.db.shipments {
		if s.OrgID == orgID {
			list = append(list, r.db.withSupplierName(s))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ExpectedDate.Equal(list[j].ExpectedDate) {
			return list[i].ExpectedDate.Before(list[j].ExpectedDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// MarkLate trava cada remessa candidata pelo mesmo mutex usado nas transações
func (r *SupplierRepository) MarkLate(ctx context.Context, before time.Time) (int, error) {
	r.db.mu.RLock()
	var candidates []string
	for id, s := range r.db.shipments {
		if s.Status == supplier.StatusPending && s.ExpectedDate.Before(before) {
			candidates = append(candidates, id)
		}
	}
	r.db.mu.RUnlock()

	marked := 0
	for _, id := range candidates {
		lock := r.db.recordLock("shipment:" + id)
		lock.Lock()
		r.db.mu.Lock()
		if s, ok := r.db.shipments[id]; ok && s.Status == supplier.StatusPending && s.ExpectedDate.Before(before) {
			c := cloneShipment(s)
			c.Status = supplier.StatusLate
			c.UpdatedAt = time.Now()
			r.db.shipments[id] = c
			marked++
		}
		r.db.mu.Unlock()
		lock.Unlock()
	}
	return marked, nil
}

// OrganizationRepository implementa organization.Repository
type OrganizationRepository struct {
	db *DB
}

// NewOrganizationRepository cria uma nova instância de OrganizationRepository
func NewOrganizationRepository(db *DB) organization.Repository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.orgs[org.ID]; exists {
		return apperr.Validation("organização já existe: %s", org.ID)
	}
	c := *org
	r.db.orgs[org.ID] = &c
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*organization.Organization, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	org, ok := r.db.orgs[id]
	if !ok {
		return nil, apperr.NotFound("organização não encontrada: %s", id)
	}
	c := *org
	return &c, nil
}
