package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerTotal is the lifetime order value of one customer.
type CustomerTotal struct {
	CustomerID      uint            `json:"customer_id"`
	TableID         uint            `json:"table_id"`
	TableIdentifier string          `json:"table_identifier"`
	Total           decimal.Decimal `json:"total"`
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// CustomerTotals sums quantity x unit_price over all orders of every
// customer, whatever their status. Customers without orders report zero.
func (r *ReportRepository) CustomerTotals(ctx context.Context) ([]CustomerTotal, error) {
	db := r.DB.WithContext(ctx)

	var rows []CustomerTotal
	if err := db.Table("customers").
		Select("customers.id AS customer_id, customers.table_id AS table_id, tables.identifier AS table_identifier").
		Joins("LEFT JOIN tables ON tables.id = customers.table_id").
		Order("customers.id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	var lines []struct {
		CustomerID uint
		Quantity   int
		UnitPrice  decimal.Decimal
	}
	if err := db.Table("order_lines").
		Select("orders.customer_id AS customer_id, order_lines.quantity AS quantity, order_lines.unit_price AS unit_price").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	totals := make(map[uint]decimal.Decimal, len(rows))
	for _, line := range lines {
		totals[line.CustomerID] = totals[line.CustomerID].Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	for i := range rows {
		rows[i].Total = decimal.Zero
		if total, ok := totals[rows[i].CustomerID]; ok {
			rows[i].Total = total
		}
	}
	return rows, nil
}
