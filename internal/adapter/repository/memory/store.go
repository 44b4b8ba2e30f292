package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/hugohenrick/bizit/internal/service/ledger"
)

// Store implementa ledger.Store. Registros lidos para alteração ficam travados até o fim
// da transação e as escritas só são aplicadas no commit.
type Store struct {
	db *DB
}

// NewStore cria uma nova instância de Store
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// InTx implementa ledger.Store.InTx
func (s *Store) InTx(ctx context.Context, fn func(tx ledger.Tx) error) error {
	tx := &memTx{
		db:        s.db,
		held:      make(map[string]*sync.Mutex),
		items:     make(map[string]*stock.Item),
		deleted:   make(map[string]bool),
		shipments: make(map[string]*supplier.Shipment),
	}
	defer tx.forget()
	defer tx.release()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

type memTx struct {
	db   *DB
	held map[string]*sync.Mutex

	items     map[string]*stock.Item
	inserted  []*stock.Item
	deleted   map[string]bool
	movements []*stock.Movement
	sales     []*sale.Record
	losses    []*loss.Record
	shipments map[string]*supplier.Shipment

	committed bool
}

func (tx *memTx) acquire(key string) {
	if _, ok := tx.held[key]; ok {
		return
	}
	m := tx.db.recordLock(key)
	m.Lock()
	tx.held[key] = m
}

func (tx *memTx) release() {
	for key, m := range tx.held {
		m.Unlock()
		delete(tx.held, key)
	}
}

// forget descarta os mutexes dos itens removidos. Roda depois de release.
func (tx *memTx) forget() {
	if !tx.committed {
		return
	}
	for id := range tx.deleted {
		tx.db.dropLock("item:" + id)
	}
}

func (tx *memTx) GetItemForUpdate(ctx context.Context, id string) (*stock.Item, error) {
	if tx.deleted[id] {
		return nil, apperr.NotFound("item de estoque não encontrado: %s", id)
	}
	if staged, ok := tx.items[id]; ok {
		return cloneItem(staged), nil
	}

	tx.acquire("item:" + id)

	tx.db.mu.RLock()
	defer tx.db.mu.RUnlock()
	item, ok := tx.db.items[id]
	if !ok {
		return nil, apperr.NotFound("item de estoque não encontrado: %s", id)
	}
	return cloneItem(item), nil
}

func (tx *memTx) InsertItem(ctx context.Context, item *stock.Item) error {
	tx.acquire("item:" + item.ID)
	tx.inserted = append(tx.inserted, cloneItem(item))
	tx.items[item.ID] = cloneItem(item)
	return nil
}

func (tx *memTx) SaveItem(ctx context.Context, item *stock.Item) error {
	if _, ok := tx.held["item:"+item.ID]; !ok {
		return apperr.Concurrency(nil, "item %s não foi bloqueado na transação", item.ID)
	}

	expected := item.Version
	if staged, ok := tx.items[item.ID]; ok {
		if staged.Version != expected {
			return apperr.Concurrency(nil, "versão do item %s mudou", item.ID)
		}
	} else {
		tx.db.mu.RLock()
		current, ok := tx.db.items[item.ID]
		tx.db.mu.RUnlock()
		if !ok {
			return apperr.NotFound("item de estoque não encontrado: %s", item.ID)
		}
		if current.Version != expected {
			return apperr.Concurrency(nil, "versão do item %s mudou", item.ID)
		}
	}

	item.Version++
	tx.items[item.ID] = cloneItem(item)
	return nil
}

func (tx *memTx) DeleteItem(ctx context.Context, id string) error {
	tx.acquire("item:" + id)
	tx.deleted[id] = true
	delete(tx.items, id)
	return nil
}

func (tx *memTx) InsertMovement(ctx context.Context, m *stock.Movement) error {
	c := *m
	tx.movements = append(tx.movements, &c)
	return nil
}

func (tx *memTx) InsertSale(ctx context.Context, r *sale.Record) error {
	c := *r
	tx.sales = append(tx.sales, &c)
	return nil
}

func (tx *memTx) InsertLoss(ctx context.Context, r *loss.Record) error {
	c := *r
	tx.losses = append(tx.losses, &c)
	return nil
}

func (tx *memTx) GetShipmentForUpdate(ctx context.Context, id string) (*supplier.Shipment, error) {
	if staged, ok := tx.shipments[id]; ok {
		return cloneShipment(staged), nil
	}

	tx.acquire("shipment:" + id)

	tx.db.mu.RLock()
	defer tx.db.mu.RUnlock()
	s, ok := tx.db.shipments[id]
	if !ok {
		return nil, apperr.NotFound("remessa não encontrada: %s", id)
	}
	return tx.db.withSupplierName(s), nil
}

func (tx *memTx) SaveShipment(ctx context.Context, s *supplier.Shipment) error {
	if _, ok := tx.held["shipment:"+s.ID]; !ok {
		return apperr.Concurrency(nil, "remessa %s não foi bloqueada na transação", s.ID)
	}
	tx.shipments[s.ID] = cloneShipment(s)
	return nil
}

func (tx *memTx) commit() error {
	db := tx.db
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, item := range tx.inserted {
		if _, exists := db.items[item.ID]; exists {
			return apperr.Validation("item de estoque já existe: %s", item.ID)
		}
	}

	for id, item := range tx.items {
		db.items[id] = item
	}
	for id := range tx.deleted {
		delete(db.items, id)
		delete(db.movements, id)
	}
	for _, m := range tx.movements {
		if tx.deleted[m.StockItemID] {
			continue
		}
		db.movements[m.StockItemID] = append(db.movements[m.StockItemID], m)
	}
	db.sales = append(db.sales, tx.sales...)
	db.losses = append(db.losses, tx.losses...)
	for id, s := range tx.shipments {
		db.shipments[id] = s
	}
	// remessas perdem o vínculo com itens removidos, como o ON DELETE SET NULL do postgres
	for id, s := range db.shipments {
		if s.StockItemID != "" && tx.deleted[s.StockItemID] {
			c := cloneShipment(s)
			c.StockItemID = ""
			db.shipments[id] = c
		}
	}
	tx.committed = true
	return nil
}
