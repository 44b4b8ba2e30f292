package memory

import (
	"sync"

	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
)

// DB guarda todos os registros em memória. É compartilhado pelo Store e pelos repositórios.
type DB struct {
	mu        sync.RWMutex
	orgs      map[string]*organization.Organization
	items     map[string]*stock.Item
	movements map[string][]*stock.Movement // por item
	sales     []*sale.Record
	losses    []*loss.Record
	suppliers map[string]*supplier.Supplier
	shipments map[string]*supplier.Shipment

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewDB cria um banco em memória vazio
func NewDB() *DB {
	return &DB{
		orgs:      make(map[string]*organization.Organization),
		items:     make(map[string]*stock.Item),
		movements: make(map[string][]*stock.Movement),
		suppliers: make(map[string]*supplier.Supplier),
		shipments: make(map[string]*supplier.Shipment),
		locks:     make(map[string]*sync.Mutex),
	}
}

// recordLock retorna o mutex do registro, criando se necessário
func (db *DB) recordLock(key string) *sync.Mutex {
	db.locksMu.Lock()
	defer db.locksMu.Unlock()

	m, ok := db.locks[key]
	if !ok {
		m = &sync.Mutex{}
		db.locks[key] = m
	}
	return m
}

// dropLock remove o mutex do registro. Só para registros removidos: um novo mutex
// para a mesma chave encontraria o registro ausente e falharia com NotFound.
func (db *DB) dropLock(key string) {
	db.locksMu.Lock()
	defer db.locksMu.Unlock()
	delete(db.locks, key)
}

func cloneItem(i *stock.Item) *stock.Item {
	c := *i
	return &c
}

func cloneShipment(s *supplier.Shipment) *supplier.Shipment {
	c := *s
	if s.ReceivedQuantity != nil {
		v := *s.ReceivedQuantity
		c.ReceivedQuantity = &v
	}
	if s.DamagedQuantity != nil {
		v := *s.DamagedQuantity
		c.DamagedQuantity = &v
	}
	if s.ReceivedDate != nil {
		v := *s.ReceivedDate
		c.ReceivedDate = &v
	}
	if s.Score != nil {
		v := *s.Score
		c.Score = &v
	}
	return &c
}

func cloneSupplier(s *supplier.Supplier) *supplier.Supplier {
	c := *s
	return &c
}

// withSupplierName preenche o nome do fornecedor. Chamar com db.mu travado.
func (db *DB) withSupplierName(s *supplier.Shipment) *supplier.Shipment {
	c := cloneShipment(s)
	if sup, ok := db.suppliers[s.SupplierID]; ok {
		c.SupplierName = sup.Name
	}
	return c
}
