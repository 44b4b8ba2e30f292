package repository

import (
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/jackc/pgx/v5"
)

const itemColumns = `id, org_id, name, category, quantity, price, cost_price,
	min_threshold, max_capacity, version, created_at, updated_at`

const movementColumns = `id, org_id, stock_item_id, delta, reason, quantity_after, actor_id, created_at`

const saleColumns = `id, org_id, stock_item_id, stock_item_name, quantity, unit_price,
	unit_cost, total_price, sold_by, sale_date`

const lossColumns = `id, org_id, stock_item_id, stock_item_name, quantity, cost_at_loss,
	total_loss, reason, notes, reported_by, loss_date`

const supplierColumns = `id, org_id, name, phone, email, address, created_at, updated_at`

// shipmentColumns exige o alias sh para shipments e s para suppliers
const shipmentColumns = `sh.id, sh.org_id, sh.supplier_id, s.name, COALESCE(sh.stock_item_id::text, ''),
	sh.expected_quantity, sh.expected_date, sh.notes, sh.status, sh.received_quantity,
	sh.damaged_quantity, sh.received_date, sh.score, sh.created_at, sh.updated_at`

func scanItem(row pgx.Row) (*stock.Item, error) {
	var i stock.Item
	err := row.Scan(&i.ID, &i.OrgID, &i.Name, &i.Category, &i.Quantity, &i.Price, &i.CostPrice,
		&i.MinThreshold, &i.MaxCapacity, &i.Version, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func scanMovement(row pgx.Row) (*stock.Movement, error) {
	var m stock.Movement
	err := row.Scan(&m.ID, &m.OrgID, &m.StockItemID, &m.Delta, &m.Reason, &m.QuantityAfter, &m.ActorID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanSale(row pgx.Row) (*sale.Record, error) {
	var r sale.Record
	err := row.Scan(&r.ID, &r.OrgID, &r.StockItemID, &r.StockItemName, &r.Quantity, &r.UnitPrice,
		&r.UnitCost, &r.TotalPrice, &r.SoldBy, &r.SaleDate)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanLoss(row pgx.Row) (*loss.Record, error) {
	var r loss.Record
	err := row.Scan(&r.ID, &r.OrgID, &r.StockItemID, &r.StockItemName, &r.Quantity, &r.CostAtLoss,
		&r.TotalLoss, &r.Reason, &r.Notes, &r.ReportedBy, &r.LossDate)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := row.Scan(&s.ID, &s.OrgID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanShipment(row pgx.Row) (*supplier.Shipment, error) {
	var s supplier.Shipment
	err := row.Scan(&s.ID, &s.OrgID, &s.SupplierID, &s.SupplierName, &s.StockItemID,
		&s.ExpectedQuantity, &s.ExpectedDate, &s.Notes, &s.Status, &s.ReceivedQuantity,
		&s.DamagedQuantity, &s.ReceivedDate, &s.Score, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// collect percorre as linhas aplicando scan
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// nullable converte string vazia em NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
